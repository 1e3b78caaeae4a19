package climate

import (
	"math"
	"sort"
)

const (
	ComfortCold        = "Cold"
	ComfortComfortable = "Comfortable"
	ComfortWarm        = "Warm"
	ComfortHot         = "Hot"
)

// VariableSummary holds descriptive statistics for one variable
type VariableSummary struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	StdDev float64 `json:"std_dev" yaml:"std_dev"`
}

// DataSummary describes the historical sample
type DataSummary struct {
	Days                 int             `json:"days" yaml:"days"`
	Temperature          VariableSummary `json:"temperature" yaml:"temperature"`
	Humidity             VariableSummary `json:"humidity" yaml:"humidity"`
	WindSpeed            VariableSummary `json:"wind_speed" yaml:"wind_speed"`
	TotalPrecipitationMM float64         `json:"total_precipitation_mm" yaml:"total_precipitation_mm"`
}

// ComfortIndex is a simplified apparent-temperature score with a band label
type ComfortIndex struct {
	Value     float64 `json:"value" yaml:"value"`
	Band      string  `json:"band" yaml:"band"`
	Available bool    `json:"available" yaml:"available"`
}

// Summarize computes per-variable statistics. Values are rounded to 2 decimals.
func Summarize(days []DailyReading) DataSummary {
	summary := DataSummary{Days: len(days)}
	if len(days) == 0 {
		return summary
	}

	temps := make([]float64, len(days))
	humidity := make([]float64, len(days))
	wind := make([]float64, len(days))
	var precip float64
	for i, d := range days {
		temps[i] = d.TemperatureC
		humidity[i] = d.HumidityPct
		wind[i] = d.WindSpeedMS
		precip += d.PrecipitationMM
	}

	summary.Temperature = describe(temps)
	summary.Humidity = describe(humidity)
	summary.WindSpeed = describe(wind)
	summary.TotalPrecipitationMM = round2(precip)
	return summary
}

func describe(values []float64) VariableSummary {
	m := mean(values)
	return VariableSummary{
		Mean:   round2(m),
		Median: round2(median(values)),
		StdDev: round2(stdDev(values, m)),
	}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// stdDev is the population standard deviation
func stdDev(values []float64, m float64) float64 {
	var sq float64
	for _, v := range values {
		sq += (v - m) * (v - m)
	}
	return math.Sqrt(sq / float64(len(values)))
}

// ComputeComfort derives the index from mean temperature and humidity.
func ComputeComfort(summary DataSummary) ComfortIndex {
	if summary.Days == 0 {
		return ComfortIndex{}
	}

	t := summary.Temperature.Mean
	h := summary.Humidity.Mean
	value := round2(t - 0.55*(1-h/100)*(t-14.5))

	return ComfortIndex{
		Value:     value,
		Band:      comfortBand(value),
		Available: true,
	}
}

func comfortBand(value float64) string {
	switch {
	case value < 18:
		return ComfortCold
	case value < 24:
		return ComfortComfortable
	case value < 30:
		return ComfortWarm
	default:
		return ComfortHot
	}
}
