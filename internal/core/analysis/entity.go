package analysis

import (
	"strings"

	"geoclima.app/internal/core/climate"
	"geoclima.app/internal/core/location"
)

// State is a stage of a single analysis run
type State string

const (
	StateIdle      State = "idle"
	StateResolving State = "resolving"
	StateNotFound  State = "not_found"
	StateFetching  State = "fetching"
	StateComposing State = "composing"
	StateDone      State = "done"
)

// IsTerminal reports whether no further transitions follow
func (s State) IsTerminal() bool {
	return s == StateNotFound || s == StateDone
}

func (s State) String() string {
	return string(s)
}

// Risk levels that trigger a listed risk factor, a caution rule or packing group.
// They are applied to RiskProbabilities and are distinct from the per-day thresholds.
const (
	ExtremeHeatRiskLevel = 0.3
	HeavyRainRiskLevel   = 0.4
	HighWindsRiskLevel   = 0.25
)

// WeatherData is the climate evidence attached to a completed analysis
type WeatherData struct {
	Sample    climate.Sample              `json:"sample" yaml:"sample"`
	Risks     climate.RiskProbabilities   `json:"risks" yaml:"risks"`
	Trend     climate.TrendSummary        `json:"trend" yaml:"trend"`
	Summary   climate.DataSummary         `json:"summary" yaml:"summary"`
	Comfort   climate.ComfortIndex        `json:"comfort" yaml:"comfort"`
	RealTime  *climate.RealTimeConditions `json:"real_time,omitempty" yaml:"real_time,omitempty"`
	Synthetic bool                        `json:"synthetic" yaml:"synthetic"`
}

// NewWeatherData copies the parts of a climate report that callers render
func NewWeatherData(report climate.Report) *WeatherData {
	return &WeatherData{
		Sample:    report.Sample,
		Risks:     report.Risks,
		Trend:     report.Trend,
		Summary:   report.Summary,
		Comfort:   report.Comfort,
		RealTime:  report.RealTime,
		Synthetic: report.Sample.Synthetic,
	}
}

// Result is the outcome of one analysis run
type Result struct {
	RequestID    string               `json:"request_id" yaml:"request_id"`
	State        State                `json:"state" yaml:"state"`
	AnalysisText string               `json:"analysis_text" yaml:"analysis_text"`
	Coordinates  location.Coordinates `json:"coordinates" yaml:"coordinates"`
	LocationName string               `json:"location_name" yaml:"location_name"`
	WeatherData  *WeatherData         `json:"weather_data,omitempty" yaml:"weather_data,omitempty"`
}

// ComposeInput carries everything the composer needs for one report
type ComposeInput struct {
	Location location.ResolvedLocation
	DateText string
	Plans    string
	Climate  climate.Report
}

// CautionRule pairs a plans keyword with the risk that must be elevated
type CautionRule struct {
	Name    string
	Keyword string
	Applies func(climate.RiskProbabilities) bool
	Advice  string
}

// Matches reports whether the plans mention the keyword and the risk is elevated
func (r CautionRule) Matches(plans string, risks climate.RiskProbabilities) bool {
	return strings.Contains(strings.ToLower(plans), r.Keyword) && r.Applies(risks)
}

const GenericCaution = "Your planned activities seem appropriate for the expected conditions, but always remain vigilant."

// CautionRules are checked in order and the first match wins
var CautionRules = []CautionRule{
	{
		Name:    "hiking",
		Keyword: "hik",
		Applies: func(r climate.RiskProbabilities) bool { return r.HeavyRain > HeavyRainRiskLevel },
		Advice:  "**Hiking Caution:** The risk of heavy rain could lead to slippery and dangerous trails. Consider waterproof hiking boots and be aware of flash flood warnings.",
	},
	{
		Name:    "camping",
		Keyword: "camp",
		Applies: func(r climate.RiskProbabilities) bool { return r.HighWinds > HighWindsRiskLevel },
		Advice:  "**Camping Caution:** High winds can pose a risk to tents. Ensure your tent is properly secured with heavy-duty stakes. Avoid camping near trees that could lose branches.",
	},
	{
		Name:    "beach",
		Keyword: "beach",
		Applies: func(r climate.RiskProbabilities) bool { return r.ExtremeHeat > ExtremeHeatRiskLevel },
		Advice:  "**Beach Advisory:** Extreme heat is likely. Seek shade during the midday hours and reapply sunscreen often.",
	},
}

// SelectCaution returns the advice of the first matching rule or the generic sentence
func SelectCaution(plans string, risks climate.RiskProbabilities) string {
	for _, rule := range CautionRules {
		if rule.Matches(plans, risks) {
			return rule.Advice
		}
	}
	return GenericCaution
}
