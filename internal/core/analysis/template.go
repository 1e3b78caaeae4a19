package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"geoclima.app/internal/core/climate"
)

const (
	syntheticNotice = "> **Note:** Historical climate data could not be retrieved for this location. " +
		"The probabilities and trend below are placeholder estimates, not observations."
	stableConditions = "Environmental conditions appear relatively stable based on historical data."
	insufficientData = "There is not enough historical data to determine a temperature trend for this period."
)

const (
	packingHeat     = "Extra water / hydration reservoir, sunscreen, wide-brimmed hat."
	packingRain     = "Full waterproof gear (jacket, pants), dry bags for electronics."
	packingWind     = "Windbreaker jacket, sturdy shelter or tent."
	packingBaseline = "Standard first-aid kit, map and compass/GPS, portable charger."
)

// RenderTemplate builds the rule-based markdown report. Identical input yields identical output.
func RenderTemplate(in ComposeInput) string {
	report := in.Climate
	risks := report.Risks

	var b strings.Builder

	fmt.Fprintf(&b, "### AI Weather & Activity Analysis for %s (%s)\n\n", in.Location.Name(), in.DateText)

	if report.Sample.Synthetic {
		b.WriteString(syntheticNotice + "\n\n")
	}

	writeSnapshot(&b, report)

	b.WriteString(trendSentence(report.Trend) + "\n\n")

	b.WriteString("**Key Environmental Risk Factors:**\n")
	listed := false
	if risks.ExtremeHeat > ExtremeHeatRiskLevel {
		fmt.Fprintf(&b, "- **High risk of extreme heat** (%s probability).\n", percent(risks.ExtremeHeat))
		listed = true
	}
	if risks.HeavyRain > HeavyRainRiskLevel {
		fmt.Fprintf(&b, "- **Moderate risk of heavy rain** (%s probability).\n", percent(risks.HeavyRain))
		listed = true
	}
	if risks.HighWinds > HighWindsRiskLevel {
		fmt.Fprintf(&b, "- **Elevated risk of high winds** (%s probability).\n", percent(risks.HighWinds))
		listed = true
	}
	if !listed {
		b.WriteString("- " + stableConditions + "\n")
	}

	fmt.Fprintf(&b, "\n**Analysis for Your Plans: '%s'**\n", in.Plans)
	b.WriteString("- " + SelectCaution(in.Plans, risks) + "\n")

	b.WriteString("\n**Suggested Packing List:**\n")
	if risks.ExtremeHeat > ExtremeHeatRiskLevel {
		b.WriteString("- " + packingHeat + "\n")
	}
	if risks.HeavyRain > HeavyRainRiskLevel {
		b.WriteString("- " + packingRain + "\n")
	}
	if risks.HighWinds > HighWindsRiskLevel {
		b.WriteString("- " + packingWind + "\n")
	}
	b.WriteString("- " + packingBaseline + "\n")

	return b.String()
}

func writeSnapshot(b *strings.Builder, report climate.Report) {
	var lines []string

	if rt := report.RealTime; rt != nil {
		line := fmt.Sprintf("- Right now: %.1f°C, %.0f%% humidity, wind %.1f m/s", rt.Temperature, rt.Humidity, rt.WindSpeed)
		if rt.Description != "" {
			line += " (" + rt.Description + ")"
		}
		lines = append(lines, line+".")
	}

	if s := report.Summary; s.Days > 0 {
		lines = append(lines, fmt.Sprintf(
			"- Historical averages for %s %d: %.1f°C, %.0f%% humidity, wind %.1f m/s, %.1f mm total precipitation over %d days.",
			report.Range.String(), report.WindowStart.Year(),
			s.Temperature.Mean, s.Humidity.Mean, s.WindSpeed.Mean, s.TotalPrecipitationMM, s.Days))
	}

	if c := report.Comfort; c.Available {
		lines = append(lines, fmt.Sprintf("- Comfort index: %.2f (%s).", c.Value, c.Band))
	}

	if len(lines) == 0 {
		return
	}

	b.WriteString("**Current Snapshot:**\n")
	for _, line := range lines {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

func trendSentence(trend climate.TrendSummary) string {
	if !trend.Available {
		return insufficientData
	}

	direction := "increase"
	if trend.TempChangePercent < 0 {
		direction = "decrease"
	}
	change := strconv.FormatFloat(math.Abs(trend.TempChangePercent), 'f', -1, 64)

	return fmt.Sprintf("Based on historical data for this time of year, the temperature trend across the period shows a **%s%% %s** from the first to the last day.", change, direction)
}

func percent(p float64) string {
	return fmt.Sprintf("%.0f%%", p*100)
}
