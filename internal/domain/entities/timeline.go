package entities

import "time"

type EventKind string

const (
	EventKindStatus     EventKind = "status"
	EventKindRemark     EventKind = "remark"
	EventKindPayment    EventKind = "payment"
	EventKindAttachment EventKind = "attachment"
	EventKindRating     EventKind = "rating"
	EventKindAudit      EventKind = "audit"
	EventKindPoints     EventKind = "points"
	EventKindSMS        EventKind = "sms"
)

// TimelineEvent is a status transition normalized for display.
//
// Duration is the time spent in FromStatus, measured from the most recent
// prior transition into that status. Nil when no such transition exists.
type TimelineEvent struct {
	Kind          EventKind      `json:"kind"`
	Label         string         `json:"label"`
	Timestamp     time.Time      `json:"timestamp"`
	ActorID       string         `json:"actor_id,omitempty"`
	Description   string         `json:"description"`
	Icon          string         `json:"icon"`
	FromStatus    DeviceStatus   `json:"from_status,omitempty"`
	ToStatus      DeviceStatus   `json:"to_status"`
	Duration      *time.Duration `json:"-"`
	DurationLabel string         `json:"duration_label,omitempty"`
}

// ActivityEvent is one record of any kind in the combined activity feed.
type ActivityEvent struct {
	Kind        EventKind `json:"kind"`
	Label       string    `json:"label"`
	Timestamp   time.Time `json:"timestamp"`
	ActorID     string    `json:"actor_id,omitempty"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Sent        bool      `json:"sent,omitempty"`
}
