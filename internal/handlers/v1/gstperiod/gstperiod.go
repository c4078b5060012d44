package gstperiod

import (
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/service"
)

// Period is the API response model for a GST period.
type Period struct {
	ID     string `json:"id" doc:"Period UUID"`
	Start  string `json:"start" doc:"First day of the period, YYYY-MM-DD"`
	End    string `json:"end" doc:"Last day of the period, YYYY-MM-DD"`
	Label  string `json:"label" doc:"Display label"`
	Status string `json:"status" enum:"open,ready_to_file,filed" doc:"Filing status"`
}

func toPeriod(p service.Period) Period {
	return Period{
		ID:     p.ID.String(),
		Start:  p.Range.Start.Format(period.DateLayout),
		End:    p.Range.End.Format(period.DateLayout),
		Label:  p.Range.Label(),
		Status: string(p.Status),
	}
}
