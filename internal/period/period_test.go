package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodRange_Monthly(t *testing.T) {
	r := PeriodRange(FrequencyMonthly, day(2024, time.February, 14))

	assert.Equal(t, day(2024, time.February, 1), r.Start)
	assert.Equal(t, day(2024, time.February, 29), r.End)
}

func TestPeriodRange_TwoMonthly(t *testing.T) {
	tests := []struct {
		date  time.Time
		start time.Time
		end   time.Time
	}{
		{day(2024, time.January, 1), day(2024, time.January, 1), day(2024, time.February, 29)},
		{day(2023, time.February, 28), day(2023, time.January, 1), day(2023, time.February, 28)},
		{day(2024, time.March, 15), day(2024, time.March, 1), day(2024, time.April, 30)},
		{day(2024, time.April, 30), day(2024, time.March, 1), day(2024, time.April, 30)},
		{day(2024, time.August, 3), day(2024, time.July, 1), day(2024, time.August, 31)},
		{day(2024, time.December, 31), day(2024, time.November, 1), day(2024, time.December, 31)},
	}

	for _, tt := range tests {
		r := PeriodRange(FrequencyTwoMonthly, tt.date)
		assert.Equal(t, tt.start, r.Start, tt.date.Format(DateLayout))
		assert.Equal(t, tt.end, r.End, tt.date.Format(DateLayout))
	}
}

func TestPeriodRange_SixMonthly(t *testing.T) {
	first := PeriodRange(FrequencySixMonthly, day(2024, time.June, 30))
	assert.Equal(t, day(2024, time.January, 1), first.Start)
	assert.Equal(t, day(2024, time.June, 30), first.End)

	second := PeriodRange(FrequencySixMonthly, day(2024, time.July, 1))
	assert.Equal(t, day(2024, time.July, 1), second.Start)
	assert.Equal(t, day(2024, time.December, 31), second.End)
}

func TestPeriodRange_UnknownFrequencyIsSixMonthly(t *testing.T) {
	r := PeriodRange(Frequency("weekly"), day(2024, time.September, 9))

	assert.Equal(t, day(2024, time.July, 1), r.Start)
	assert.Equal(t, day(2024, time.December, 31), r.End)
}

func TestPeriodRange_TilesCalendar(t *testing.T) {
	for _, frequency := range []Frequency{FrequencyMonthly, FrequencyTwoMonthly, FrequencySixMonthly} {
		current := PeriodRange(frequency, day(2023, time.January, 1))
		for d := day(2023, time.January, 1); d.Year() < 2025; d = d.AddDate(0, 0, 1) {
			r := PeriodRange(frequency, d)
			assert.True(t, r.Contains(d))
			if r != current {
				assert.Equal(t, current.End.AddDate(0, 0, 1), r.Start, "no gap or overlap for %s", frequency)
				current = r
			}
		}
	}
}

func TestRange_ContainsIgnoresTimeOfDay(t *testing.T) {
	r := PeriodRange(FrequencyMonthly, day(2024, time.May, 1))

	assert.True(t, r.Contains(time.Date(2024, time.May, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(day(2024, time.June, 1)))
	assert.False(t, r.Contains(day(2024, time.April, 30)))
}

func TestRange_Key(t *testing.T) {
	r := PeriodRange(FrequencyTwoMonthly, day(2024, time.May, 20))

	assert.Equal(t, "2024-05-01|2024-06-30", r.Key())
}

func TestParseFrequency(t *testing.T) {
	f, err := ParseFrequency("monthly")
	assert.NoError(t, err)
	assert.Equal(t, FrequencyMonthly, f)

	_, err = ParseFrequency("yearly")
	assert.Error(t, err)
}

func TestPresetRange(t *testing.T) {
	today := time.Date(2024, time.March, 18, 15, 4, 0, 0, time.UTC)

	thisMonth, err := PresetRange(PresetThisMonth, today)
	assert.NoError(t, err)
	assert.Equal(t, day(2024, time.March, 1), thisMonth.Start)
	assert.Equal(t, day(2024, time.March, 18), thisMonth.End)

	lastTwo, err := PresetRange(PresetLastTwoMonth, day(2024, time.February, 10))
	assert.NoError(t, err)
	assert.Equal(t, day(2023, time.December, 1), lastTwo.Start)

	_, err = PresetRange(Preset("custom"), today)
	assert.Error(t, err)
}
