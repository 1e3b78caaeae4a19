package climate

import (
	"math"
	"time"
)

// Fixed risk thresholds. A day counts toward a risk when it strictly exceeds the value.
const (
	ExtremeHeatThresholdC = 35.0
	HeavyRainThresholdMM  = 10.0
	HighWindThresholdMS   = 15.0
)

// Upper bounds for placeholder probabilities used when historical data is unavailable
const (
	syntheticHeatCeiling  = 0.5
	syntheticRainCeiling  = 0.6
	syntheticWindCeiling  = 0.4
	syntheticTrendCeiling = 10.0
)

const SourceSynthetic = "synthetic"

// DailyReading is one day of the historical series
type DailyReading struct {
	Date            time.Time `json:"date" yaml:"date"`
	TemperatureC    float64   `json:"temperature_c" yaml:"temperature_c"`
	HumidityPct     float64   `json:"humidity_pct" yaml:"humidity_pct"`
	WindSpeedMS     float64   `json:"wind_speed_ms" yaml:"wind_speed_ms"`
	PrecipitationMM float64   `json:"precipitation_mm" yaml:"precipitation_mm"`
}

// Sample is the chronological historical series. Synthetic samples carry no days.
type Sample struct {
	Days      []DailyReading `json:"days" yaml:"days"`
	Source    string         `json:"source" yaml:"source"`
	Synthetic bool           `json:"synthetic" yaml:"synthetic"`
}

// TotalDays returns the number of readings
func (s Sample) TotalDays() int {
	return len(s.Days)
}

// RiskProbabilities are fractions of sampled days above each threshold
type RiskProbabilities struct {
	ExtremeHeat float64 `json:"extreme_heat" yaml:"extreme_heat"`
	HeavyRain   float64 `json:"heavy_rain" yaml:"heavy_rain"`
	HighWinds   float64 `json:"high_winds" yaml:"high_winds"`
}

// TrendSummary is the first-to-last day temperature change
type TrendSummary struct {
	TempChangePercent float64 `json:"temp_change_percent" yaml:"temp_change_percent"`
	Available         bool    `json:"available" yaml:"available"`
}

// RealTimeConditions is a single current observation
type RealTimeConditions struct {
	Temperature float64   `json:"temperature" yaml:"temperature"`
	Humidity    float64   `json:"humidity" yaml:"humidity"`
	WindSpeed   float64   `json:"wind_speed" yaml:"wind_speed"`
	Description string    `json:"description" yaml:"description"`
	ObservedAt  time.Time `json:"observed_at" yaml:"observed_at"`
}

// Report is everything the provider learned about a location and date span
type Report struct {
	Range       DateRangeSpec       `json:"range" yaml:"range"`
	WindowStart time.Time           `json:"window_start" yaml:"window_start"`
	WindowEnd   time.Time           `json:"window_end" yaml:"window_end"`
	Sample      Sample              `json:"sample" yaml:"sample"`
	Risks       RiskProbabilities   `json:"risks" yaml:"risks"`
	Trend       TrendSummary        `json:"trend" yaml:"trend"`
	Summary     DataSummary         `json:"summary" yaml:"summary"`
	Comfort     ComfortIndex        `json:"comfort" yaml:"comfort"`
	RealTime    *RealTimeConditions `json:"real_time,omitempty" yaml:"real_time,omitempty"`
}

// ComputeRisks counts threshold exceedances. An empty series yields all zeros.
func ComputeRisks(days []DailyReading) RiskProbabilities {
	if len(days) == 0 {
		return RiskProbabilities{}
	}

	var heat, rain, wind int
	for _, d := range days {
		if d.TemperatureC > ExtremeHeatThresholdC {
			heat++
		}
		if d.PrecipitationMM > HeavyRainThresholdMM {
			rain++
		}
		if d.WindSpeedMS > HighWindThresholdMS {
			wind++
		}
	}

	total := float64(len(days))
	return RiskProbabilities{
		ExtremeHeat: float64(heat) / total,
		HeavyRain:   float64(rain) / total,
		HighWinds:   float64(wind) / total,
	}
}

// ComputeTrend needs at least two days and a non-zero first temperature
func ComputeTrend(days []DailyReading) TrendSummary {
	if len(days) < 2 {
		return TrendSummary{}
	}

	first := days[0].TemperatureC
	last := days[len(days)-1].TemperatureC
	if first == 0 {
		return TrendSummary{}
	}

	return TrendSummary{
		TempChangePercent: round2((last - first) / first * 100),
		Available:         true,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
