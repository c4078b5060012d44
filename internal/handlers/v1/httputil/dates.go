package httputil

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/gst-server/internal/period"
)

// ParseDate parses a YYYY-MM-DD parameter. name is used in the error message.
func ParseDate(name, value string) (time.Time, error) {
	day, err := period.ParseDay(value)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid "+name, err)
	}
	return day, nil
}

// ParseOptionalRange returns nil when both bounds are empty. Either both or
// neither must be given.
func ParseOptionalRange(from, to string) (*period.Range, error) {
	if from == "" && to == "" {
		return nil, nil
	}
	if from == "" || to == "" {
		return nil, huma.NewError(http.StatusBadRequest, "from and to must be given together")
	}
	r, err := ParseRange(from, to)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ParseRange parses a required from/to pair.
func ParseRange(from, to string) (period.Range, error) {
	start, err := ParseDate("from", from)
	if err != nil {
		return period.Range{}, err
	}
	end, err := ParseDate("to", to)
	if err != nil {
		return period.Range{}, err
	}
	if end.Before(start) {
		return period.Range{}, huma.NewError(http.StatusBadRequest, "to must not be before from")
	}
	return period.Range{Start: start, End: end}, nil
}
