package climate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected DateRangeSpec
	}{
		{
			name:     "FullMonthWithRange",
			input:    "July 15-20",
			expected: DateRangeSpec{Month: time.July, StartDay: 15, EndDay: 20},
		},
		{
			name:     "AbbreviatedMonthCaseInsensitive",
			input:    "aug 3 to 9",
			expected: DateRangeSpec{Month: time.August, StartDay: 3, EndDay: 9},
		},
		{
			name:     "EnDashAndOrdinals",
			input:    "December 1st–5th",
			expected: DateRangeSpec{Month: time.December, StartDay: 1, EndDay: 5},
		},
		{
			name:     "SingleDay",
			input:    "Sept 4",
			expected: DateRangeSpec{Month: time.September, StartDay: 4, EndDay: 4},
		},
		{
			name:     "ReversedRangeIsSwapped",
			input:    "March 20-10",
			expected: DateRangeSpec{Month: time.March, StartDay: 10, EndDay: 20},
		},
		{
			name:     "CrossMonthSpanEndsWithFirstMonth",
			input:    "Dec 30 - Jan 2",
			expected: DateRangeSpec{Month: time.December, StartDay: 30, EndDay: 31},
		},
		{
			name:     "CrossMonthDayBeforeMonth",
			input:    "December 30 - 2 January",
			expected: DateRangeSpec{Month: time.December, StartDay: 30, EndDay: 31},
		},
		{
			name:     "CrossMonthForwardSpan",
			input:    "Feb 27 to March 3",
			expected: DateRangeSpec{Month: time.February, StartDay: 27, EndDay: 29},
		},
		{
			name:     "UnknownMonthDefaultsToJuly",
			input:    "Smarch 2-4",
			expected: DateRangeSpec{Month: time.July, StartDay: 2, EndDay: 4, MonthDefaulted: true},
		},
		{
			name:     "MissingDaysDefault",
			input:    "October",
			expected: DateRangeSpec{Month: time.October, StartDay: 15, EndDay: 20, DaysDefaulted: true},
		},
		{
			name:     "InvalidDaysDefault",
			input:    "May 40-45",
			expected: DateRangeSpec{Month: time.May, StartDay: 15, EndDay: 20, DaysDefaulted: true},
		},
		{
			name:     "Gibberish",
			input:    "next weekend sometime",
			expected: DateRangeSpec{Month: time.July, StartDay: 15, EndDay: 20, MonthDefaulted: true, DaysDefaulted: true},
		},
		{
			name:     "Empty",
			input:    "",
			expected: DateRangeSpec{Month: time.July, StartDay: 15, EndDay: 20, MonthDefaulted: true, DaysDefaulted: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDateRange(tt.input))
		})
	}
}

func TestDateRangeSpec_HistoricalWindow(t *testing.T) {
	now := time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

	start, end := ParseDateRange("July 15-20").HistoricalWindow(now)

	assert.Equal(t, time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC), end)
}

func TestDateRangeSpec_CrossMonthHistoricalWindow(t *testing.T) {
	now := time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

	start, end := ParseDateRange("Dec 30 - Jan 2").HistoricalWindow(now)
	assert.Equal(t, time.Date(2025, time.December, 30, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), end)

	_, febEnd := ParseDateRange("Feb 27 to March 3").HistoricalWindow(now)
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), febEnd)
}

func TestDateRangeSpec_WindowClampsToMonthLength(t *testing.T) {
	dateRange := DateRangeSpec{Month: time.February, StartDay: 27, EndDay: 31}

	start, end := dateRange.Window(2025)
	assert.Equal(t, 27, start.Day())
	assert.Equal(t, 28, end.Day())

	_, leapEnd := dateRange.Window(2024)
	assert.Equal(t, 29, leapEnd.Day())
	assert.Equal(t, time.February, leapEnd.Month())
}

func TestDateRangeSpec_String(t *testing.T) {
	assert.Equal(t, "July 15-20", DateRangeSpec{Month: time.July, StartDay: 15, EndDay: 20}.String())
	assert.Equal(t, "May 4", DateRangeSpec{Month: time.May, StartDay: 4, EndDay: 4}.String())
}
