package period

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format used for stored and exported dates.
const DateLayout = "2006-01-02"

// Frequency is how often a user files GST.
type Frequency string

const (
	FrequencyMonthly    Frequency = "monthly"
	FrequencyTwoMonthly Frequency = "two-monthly"
	FrequencySixMonthly Frequency = "six-monthly"
)

// DefaultFrequency is used for users who have never saved settings.
const DefaultFrequency = FrequencyTwoMonthly

// ParseFrequency validates a frequency coming from a request or the database.
func ParseFrequency(value string) (Frequency, error) {
	switch Frequency(value) {
	case FrequencyMonthly, FrequencyTwoMonthly, FrequencySixMonthly:
		return Frequency(value), nil
	}
	return "", fmt.Errorf("unknown gst frequency %q", value)
}

func (f Frequency) String() string {
	return string(f)
}

// Range is a closed calendar range. Both Start and End are inclusive days.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the calendar day of date falls inside the range.
func (r Range) Contains(date time.Time) bool {
	day := Day(date)
	return !day.Before(r.Start) && !day.After(r.End)
}

// Key identifies the range within one batch of lookups.
func (r Range) Key() string {
	return r.Start.Format(DateLayout) + "|" + r.End.Format(DateLayout)
}

// Label is the human readable form of the range.
func (r Range) Label() string {
	return r.Start.Format(DateLayout) + " - " + r.End.Format(DateLayout)
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD date.
func ParseDay(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}

// PeriodRange returns the filing period containing date. Two-monthly periods
// pair Jan/Feb, Mar/Apr and so on. Frequencies that are not monthly or
// two-monthly are treated as six-monthly.
func PeriodRange(frequency Frequency, date time.Time) Range {
	year, month, _ := date.Date()
	zeroBased := int(month) - 1

	var startMonth, months int
	switch frequency {
	case FrequencyMonthly:
		startMonth, months = zeroBased, 1
	case FrequencyTwoMonthly:
		startMonth, months = zeroBased-zeroBased%2, 2
	default:
		startMonth, months = 0, 6
		if zeroBased >= 6 {
			startMonth = 6
		}
	}

	start := time.Date(year, time.Month(startMonth+1), 1, 0, 0, 0, 0, time.UTC)
	return Range{
		Start: start,
		End:   start.AddDate(0, months, -1),
	}
}
