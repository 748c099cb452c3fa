package response

import (
	"time"

	"repair_desk/internal/usecase"
)

// CountdownResponse has no target when the device has no expected return date.
type CountdownResponse struct {
	Target           *time.Time `json:"target,omitempty"`
	Label            string     `json:"label"`
	Units            []string   `json:"units"`
	Color            string     `json:"color,omitempty"`
	Overdue          bool       `json:"overdue"`
	RemainingSeconds int64      `json:"remaining_seconds"`
}

func FromCountdown(c *usecase.Countdown) CountdownResponse {
	if c == nil {
		return CountdownResponse{Label: "-", Units: []string{}}
	}
	target := c.Target
	res := CountdownResponse{
		Target:           &target,
		Label:            c.Label,
		Units:            c.Units,
		Color:            string(c.Color),
		Overdue:          c.Overdue,
		RemainingSeconds: int64(c.Remaining / time.Second),
	}
	if res.Units == nil {
		res.Units = []string{}
	}
	return res
}
