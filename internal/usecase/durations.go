package usecase

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"repair_desk/internal/domain/entities"
)

type CountdownColor string

const (
	CountdownGreen CountdownColor = "green"
	CountdownAmber CountdownColor = "amber"
	CountdownRed   CountdownColor = "red"

	overdueLabel = "Overdue"
	emptyLabel   = "-"

	amberWindow = 24 * time.Hour
)

// Countdown is the remaining time until a target, reduced to its two most
// significant units.
type Countdown struct {
	Target    time.Time      `json:"target"`
	Remaining time.Duration  `json:"-"`
	Units     []string       `json:"units"`
	Label     string         `json:"label"`
	Color     CountdownColor `json:"color"`
	Overdue   bool           `json:"overdue"`
}

// MinimalCountdown computes the countdown from now to target.
//
// Units, in order: days; hours when days or hours are set; minutes when
// days are not set; seconds when neither days nor hours are set. Only the
// first two are kept, so 3d 4h, 5h 12m and 9m 30s are the possible shapes.
func MinimalCountdown(target, now time.Time) Countdown {
	remaining := target.Sub(now)
	c := Countdown{Target: target, Remaining: remaining}

	if remaining <= 0 {
		c.Color = CountdownRed
		c.Label = overdueLabel
		c.Overdue = true
		return c
	}

	if remaining <= amberWindow {
		c.Color = CountdownAmber
	} else {
		c.Color = CountdownGreen
	}

	total := int64(remaining / time.Second)
	days := total / 86400
	hours := (total / 3600) % 24
	minutes := (total / 60) % 60
	seconds := total % 60

	var units []string
	if days > 0 {
		units = append(units, fmt.Sprintf("%dd", days))
	}
	if hours > 0 || days > 0 {
		units = append(units, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 && days == 0 {
		units = append(units, fmt.Sprintf("%dm", minutes))
	}
	if days == 0 && hours == 0 {
		units = append(units, fmt.Sprintf("%ds", seconds))
	}
	if len(units) > 2 {
		units = units[:2]
	}

	c.Units = units
	c.Label = strings.Join(units, " ")
	return c
}

// FormatDuration renders d as "2d 3h 15m", "4h 10m" or "12m".
// Nil and negative durations render as "-".
func FormatDuration(d *time.Duration) string {
	if d == nil || *d < 0 {
		return emptyLabel
	}
	return formatMinutes(int64(*d / time.Minute))
}

// FormatMillis is FormatDuration for a raw millisecond count; NaN and
// infinities render as "-". Counts past the time.Duration range are
// broken down from whole minutes so they still render.
func FormatMillis(ms float64) string {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || ms < 0 {
		return emptyLabel
	}
	minutes := math.Floor(ms / float64(time.Minute/time.Millisecond))
	if minutes >= math.MaxInt64 {
		return formatMinutes(math.MaxInt64)
	}
	return formatMinutes(int64(minutes))
}

func splitMinutes(totalMinutes int64) (days, hours, minutes int64) {
	return totalMinutes / (24 * 60), (totalMinutes / 60) % 24, totalMinutes % 60
}

func formatMinutes(totalMinutes int64) string {
	days, hours, minutes := splitMinutes(totalMinutes)
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// formatElapsed is the timeline label: "<h>h <m>m", or "<m>m" under an hour.
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int64(d / time.Hour)
	minutes := int64(d/time.Minute) % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// RepairPhases holds the phase boundaries of a repair and the intervals
// between them. A nil field means the boundary was never reached.
type RepairPhases struct {
	InRepairAt       *time.Time     `json:"in_repair_at,omitempty"`
	RepairCompleteAt *time.Time     `json:"repair_complete_at,omitempty"`
	DoneAt           *time.Time     `json:"done_at,omitempty"`
	Technician       *time.Duration `json:"-"`
	Handover         *time.Duration `json:"-"`
}

// DeriveRepairPhases locates the first transition (by time) into in-repair,
// repair-complete and done. Transitions without a timestamp are ignored.
func DeriveRepairPhases(transitions []entities.Transition) RepairPhases {
	ordered := make([]entities.Transition, 0, len(transitions))
	for _, t := range transitions {
		if !t.CreatedAt.IsZero() {
			ordered = append(ordered, t)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	first := func(status entities.DeviceStatus) *time.Time {
		for _, t := range ordered {
			if t.ToStatus == status {
				at := t.CreatedAt
				return &at
			}
		}
		return nil
	}

	p := RepairPhases{
		InRepairAt:       first(entities.DeviceStatusInRepair),
		RepairCompleteAt: first(entities.DeviceStatusRepairComplete),
		DoneAt:           first(entities.DeviceStatusDone),
	}
	p.Technician = between(p.InRepairAt, p.RepairCompleteAt)
	p.Handover = between(p.RepairCompleteAt, p.DoneAt)
	return p
}

func between(from, to *time.Time) *time.Duration {
	if from == nil || to == nil {
		return nil
	}
	d := to.Sub(*from)
	return &d
}

type WarrantyStatus string

const (
	WarrantyActive  WarrantyStatus = "active"
	WarrantyExpired WarrantyStatus = "expired"
	WarrantyNone    WarrantyStatus = "none"
)

type WarrantyInfo struct {
	Status         WarrantyStatus `json:"status"`
	Start          *time.Time     `json:"start,omitempty"`
	End            *time.Time     `json:"end,omitempty"`
	DurationMonths int            `json:"duration_months"`
}

// DeriveWarranty reports the warranty state of a device at now. A status
// stored on the device takes precedence over the one implied by the dates.
func DeriveWarranty(d entities.Device, now time.Time) WarrantyInfo {
	w := WarrantyInfo{Status: WarrantyNone}
	if !d.WarrantyStart.IsZero() {
		start := d.WarrantyStart
		w.Start = &start
	}
	if !d.WarrantyEnd.IsZero() {
		end := d.WarrantyEnd
		w.End = &end
	}

	if w.Start != nil && w.End != nil {
		days := w.End.Sub(*w.Start).Hours() / 24
		w.DurationMonths = int(math.Round(days / 30))
	}

	switch {
	case w.End == nil:
	case now.After(*w.End):
		w.Status = WarrantyExpired
	case w.Start == nil || !now.Before(*w.Start):
		w.Status = WarrantyActive
	}

	if stored := strings.TrimSpace(d.WarrantyStatus); stored != "" {
		w.Status = WarrantyStatus(strings.ToLower(stored))
	}
	return w
}
