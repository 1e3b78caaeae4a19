package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"geoclima.app/internal/core/climate"
)

func TestSelectCaution(t *testing.T) {
	tests := []struct {
		name     string
		plans    string
		risks    climate.RiskProbabilities
		expected string
	}{
		{
			name:     "HikingWithRain",
			plans:    "Hiking and camping",
			risks:    climate.RiskProbabilities{HeavyRain: 0.5, HighWinds: 0.5},
			expected: CautionRules[0].Advice,
		},
		{
			name:     "CampingWhenRainIsLow",
			plans:    "Hiking and camping",
			risks:    climate.RiskProbabilities{HeavyRain: 0.4, HighWinds: 0.3},
			expected: CautionRules[1].Advice,
		},
		{
			name:     "BeachWithHeat",
			plans:    "BEACH day",
			risks:    climate.RiskProbabilities{ExtremeHeat: 0.31},
			expected: CautionRules[2].Advice,
		},
		{
			name:     "KeywordWithoutRisk",
			plans:    "beach volleyball",
			risks:    climate.RiskProbabilities{ExtremeHeat: 0.3, HeavyRain: 0.9},
			expected: GenericCaution,
		},
		{
			name:     "RiskWithoutKeyword",
			plans:    "museum visit",
			risks:    climate.RiskProbabilities{ExtremeHeat: 0.9, HeavyRain: 0.9, HighWinds: 0.9},
			expected: GenericCaution,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SelectCaution(tt.plans, tt.risks))
		})
	}
}

func TestCautionRules_Order(t *testing.T) {
	names := make([]string, 0, len(CautionRules))
	for _, rule := range CautionRules {
		names = append(names, rule.Name)
	}
	assert.Equal(t, []string{"hiking", "camping", "beach"}, names)
}

func TestState_IsTerminal(t *testing.T) {
	assert.True(t, StateDone.IsTerminal())
	assert.True(t, StateNotFound.IsTerminal())
	assert.False(t, StateIdle.IsTerminal())
	assert.False(t, StateResolving.IsTerminal())
	assert.False(t, StateFetching.IsTerminal())
	assert.False(t, StateComposing.IsTerminal())
}

func TestNewWeatherData(t *testing.T) {
	rt := &climate.RealTimeConditions{Temperature: 21}
	report := climate.Report{
		Sample:   climate.Sample{Source: climate.SourceSynthetic, Synthetic: true},
		Risks:    climate.RiskProbabilities{HeavyRain: 0.2},
		Trend:    climate.TrendSummary{TempChangePercent: 3, Available: true},
		RealTime: rt,
	}

	data := NewWeatherData(report)

	assert.True(t, data.Synthetic)
	assert.Equal(t, report.Risks, data.Risks)
	assert.Equal(t, report.Trend, data.Trend)
	assert.Same(t, rt, data.RealTime)
}
