package climate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultMonth    = time.July
	DefaultStartDay = 15
	DefaultEndDay   = 20
)

// DateRangeSpec is a month and an inclusive day span without a year
type DateRangeSpec struct {
	Month          time.Month `json:"month" yaml:"month"`
	StartDay       int        `json:"start_day" yaml:"start_day"`
	EndDay         int        `json:"end_day" yaml:"end_day"`
	MonthDefaulted bool       `json:"month_defaulted,omitempty" yaml:"month_defaulted,omitempty"`
	DaysDefaulted  bool       `json:"days_defaulted,omitempty" yaml:"days_defaulted,omitempty"`
}

var (
	monthRegex     = regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sept?(?:ember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\b`)
	dayRangeRegex  = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s*(?:-|–|—|to)\s*(?:[a-z]+\.?\s+)?(\d{1,2})(?:st|nd|rd|th)?\b`)
	singleDayRegex = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\b`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// ParseDateRange reads expressions like "July 15-20", "Aug 3 to 9" or "Dec 25".
// It never fails: an unknown month becomes July and an unknown day span becomes 15-20.
// A span running into a second month, as in "Dec 30 - Jan 2", ends on the last day of the first month.
func ParseDateRange(text string) DateRangeSpec {
	dateRange := DateRangeSpec{
		Month:    DefaultMonth,
		StartDay: DefaultStartDay,
		EndDay:   DefaultEndDay,
	}

	if m := monthRegex.FindString(text); m != "" {
		dateRange.Month = monthsByPrefix[strings.ToLower(m[:3])]
	} else {
		dateRange.MonthDefaulted = true
	}

	start, end, ok := parseDays(text)
	if !ok {
		dateRange.DaysDefaulted = true
		return dateRange
	}
	switch {
	case spansMonths(text):
		end = daysIn(dateRange.Month, leapYear)
	case start > end:
		start, end = end, start
	}
	dateRange.StartDay, dateRange.EndDay = start, end
	return dateRange
}

func parseDays(text string) (int, int, bool) {
	if m := dayRangeRegex.FindStringSubmatch(text); m != nil {
		start, errStart := strconv.Atoi(m[1])
		end, errEnd := strconv.Atoi(m[2])
		if errStart == nil && errEnd == nil && validDay(start) && validDay(end) {
			return start, end, true
		}
		return 0, 0, false
	}

	if m := singleDayRegex.FindStringSubmatch(text); m != nil {
		day, err := strconv.Atoi(m[1])
		if err == nil && validDay(day) {
			return day, day, true
		}
	}
	return 0, 0, false
}

// leapYear gives every month its longest length; Window clamps to the real year
const leapYear = 2024

func spansMonths(text string) bool {
	months := monthRegex.FindAllString(text, -1)
	if len(months) < 2 {
		return false
	}
	first := monthsByPrefix[strings.ToLower(months[0][:3])]
	last := monthsByPrefix[strings.ToLower(months[len(months)-1][:3])]
	return first != last
}

func validDay(d int) bool {
	return d >= 1 && d <= 31
}

// Window returns the concrete inclusive dates in the given year, clamping days to the month length.
func (d DateRangeSpec) Window(year int) (time.Time, time.Time) {
	last := daysIn(d.Month, year)
	start := min(max(d.StartDay, 1), last)
	end := min(max(d.EndDay, 1), last)
	return time.Date(year, d.Month, start, 0, 0, 0, 0, time.UTC),
		time.Date(year, d.Month, end, 0, 0, 0, 0, time.UTC)
}

// HistoricalWindow is the same month/day span one year before now
func (d DateRangeSpec) HistoricalWindow(now time.Time) (time.Time, time.Time) {
	return d.Window(now.Year() - 1)
}

// String renders the span as "July 15-20"
func (d DateRangeSpec) String() string {
	if d.StartDay == d.EndDay {
		return fmt.Sprintf("%s %d", d.Month, d.StartDay)
	}
	return fmt.Sprintf("%s %d-%d", d.Month, d.StartDay, d.EndDay)
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
