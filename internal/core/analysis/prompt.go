package analysis

import (
	"fmt"
	"strings"
)

const promptInstructions = `You are a weather and outdoor-activity advisor.
Using only the data above, write a markdown report with these sections in order:
a level-3 heading "AI Weather & Activity Analysis for <location> (<dates>)", a short current snapshot,
the temperature trend, key environmental risk factors, an analysis of the user's plans and a suggested packing list.
Quote probabilities as whole percentages. Do not invent measurements that are not listed.`

// BuildPrompt renders all numeric inputs of a report into one completion prompt
func BuildPrompt(in ComposeInput) string {
	report := in.Climate

	var b strings.Builder
	fmt.Fprintf(&b, "Location: %s (lat %.4f, lon %.4f)\n", in.Location.Name(), in.Location.Coordinates.Latitude, in.Location.Coordinates.Longitude)
	fmt.Fprintf(&b, "Dates: %s (historical window %s to %s)\n", in.DateText,
		report.WindowStart.Format("2006-01-02"), report.WindowEnd.Format("2006-01-02"))
	fmt.Fprintf(&b, "Planned activities: %s\n\n", in.Plans)

	if report.Sample.Synthetic {
		b.WriteString("DATA WARNING: historical observations were unavailable. The risk probabilities and trend are synthetic placeholders and must be presented as estimates.\n\n")
	} else {
		fmt.Fprintf(&b, "Historical source: %s, %d days\n", report.Sample.Source, report.Sample.TotalDays())
	}

	b.WriteString("Risk probabilities (fraction of days above threshold):\n")
	fmt.Fprintf(&b, "- extreme heat (>35°C): %.2f\n", report.Risks.ExtremeHeat)
	fmt.Fprintf(&b, "- heavy rain (>10 mm): %.2f\n", report.Risks.HeavyRain)
	fmt.Fprintf(&b, "- high winds (>15 m/s): %.2f\n", report.Risks.HighWinds)

	if report.Trend.Available {
		fmt.Fprintf(&b, "Temperature change first to last day: %.2f%%\n", report.Trend.TempChangePercent)
	} else {
		b.WriteString("Temperature change first to last day: unavailable\n")
	}

	if s := report.Summary; s.Days > 0 {
		fmt.Fprintf(&b, "Temperature °C: mean %.2f, median %.2f, std dev %.2f\n", s.Temperature.Mean, s.Temperature.Median, s.Temperature.StdDev)
		fmt.Fprintf(&b, "Humidity %%: mean %.2f, median %.2f, std dev %.2f\n", s.Humidity.Mean, s.Humidity.Median, s.Humidity.StdDev)
		fmt.Fprintf(&b, "Wind m/s: mean %.2f, median %.2f, std dev %.2f\n", s.WindSpeed.Mean, s.WindSpeed.Median, s.WindSpeed.StdDev)
		fmt.Fprintf(&b, "Total precipitation mm: %.2f\n", s.TotalPrecipitationMM)
	}
	if c := report.Comfort; c.Available {
		fmt.Fprintf(&b, "Comfort index: %.2f (%s)\n", c.Value, c.Band)
	}

	if rt := report.RealTime; rt != nil {
		fmt.Fprintf(&b, "Current conditions: %.1f°C, %.0f%% humidity, wind %.1f m/s, %s\n",
			rt.Temperature, rt.Humidity, rt.WindSpeed, rt.Description)
	} else {
		b.WriteString("Current conditions: unavailable\n")
	}

	b.WriteString("\n" + promptInstructions)
	return b.String()
}
