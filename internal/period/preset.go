package period

import (
	"fmt"
	"time"
)

// Preset names a date range relative to today.
type Preset string

const (
	PresetThisMonth    Preset = "this_month"
	PresetLastTwoMonth Preset = "last_2_months"
)

// PresetRange returns the range for a preset, ending today.
func PresetRange(preset Preset, today time.Time) (Range, error) {
	day := Day(today)
	year, month, _ := day.Date()

	switch preset {
	case PresetThisMonth:
		return Range{Start: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), End: day}, nil
	case PresetLastTwoMonth:
		return Range{Start: time.Date(year, month-2, 1, 0, 0, 0, 0, time.UTC), End: day}, nil
	}
	return Range{}, fmt.Errorf("unknown date range preset %q", preset)
}
