package usecase

import (
	"fmt"
	"sort"
	"strings"

	"repair_desk/internal/domain/entities"
)

type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// ParseSortOrder defaults to ascending for anything but "desc".
func ParseSortOrder(raw string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(raw), string(SortDescending)) {
		return SortDescending
	}
	return SortAscending
}

const (
	statusChangeLabel = "Status Change"

	iconClock         = "clock"
	iconMessageSquare = "message-square"
	iconCreditCard    = "credit-card"
	iconUpload        = "upload"
	iconStar          = "star"
	iconActivity      = "activity"
	iconAward         = "award"

	smsPreviewLength = 50
)

// BuildTimeline normalizes status transitions into timeline events.
//
// Transitions without a timestamp are dropped. The duration of an event is
// the time since the most recent earlier transition into its from-status.
// Equal timestamps keep their input order in both directions.
func BuildTimeline(transitions []entities.Transition, order SortOrder) []entities.TimelineEvent {
	ordered := make([]entities.Transition, 0, len(transitions))
	for _, t := range transitions {
		if t.CreatedAt.IsZero() {
			continue
		}
		ordered = append(ordered, t)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	events := make([]entities.TimelineEvent, 0, len(ordered))
	for i, t := range ordered {
		ev := entities.TimelineEvent{
			Kind:        entities.EventKindStatus,
			Label:       statusChangeLabel,
			Timestamp:   t.CreatedAt,
			ActorID:     t.PerformedBy,
			Description: "Changed to " + t.ToStatus.Words(),
			Icon:        iconClock,
			FromStatus:  t.FromStatus,
			ToStatus:    t.ToStatus,
		}
		if t.FromStatus != "" {
			for j := i - 1; j >= 0; j-- {
				if ordered[j].ToStatus == t.FromStatus {
					d := t.CreatedAt.Sub(ordered[j].CreatedAt)
					ev.Duration = &d
					ev.DurationLabel = formatElapsed(d)
					break
				}
			}
		}
		events = append(events, ev)
	}

	if order == SortDescending {
		sortEventsDescending(events)
	}
	return events
}

func sortEventsDescending(events []entities.TimelineEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
}

// ActivityRecords is everything the activity feed merges.
type ActivityRecords struct {
	Transitions []entities.Transition
	Remarks     []entities.Remark
	Payments    []entities.Payment
	Attachments []entities.Attachment
	Ratings     []entities.Rating
	AuditLogs   []entities.AuditLog
	Points      []entities.PointsTransaction
	SMSLogs     []entities.SMSLog
}

// BuildActivityFeed merges every record kind into one chronological feed.
// Remarks written by viewerID are marked as sent.
func BuildActivityFeed(in ActivityRecords, viewerID string, order SortOrder) []entities.ActivityEvent {
	var feed []entities.ActivityEvent
	add := func(ev entities.ActivityEvent) {
		if ev.Timestamp.IsZero() {
			return
		}
		feed = append(feed, ev)
	}

	for _, t := range in.Transitions {
		add(entities.ActivityEvent{
			Kind:        entities.EventKindStatus,
			Label:       statusChangeLabel,
			Timestamp:   t.CreatedAt,
			ActorID:     t.PerformedBy,
			Description: "Changed to " + t.ToStatus.Words(),
			Icon:        iconClock,
		})
	}
	for _, r := range in.Remarks {
		sent := viewerID != "" && r.CreatedBy == viewerID
		label := "Incoming Remark"
		if sent {
			label = "Sent Remark"
		}
		add(entities.ActivityEvent{
			Kind:        entities.EventKindRemark,
			Label:       label,
			Timestamp:   r.CreatedAt,
			ActorID:     r.CreatedBy,
			Description: r.Content,
			Icon:        iconMessageSquare,
			Sent:        sent,
		})
	}
	for _, p := range in.Payments {
		add(entities.ActivityEvent{
			Kind:        entities.EventKindPayment,
			Label:       "Payment",
			Timestamp:   p.PaymentDate,
			ActorID:     p.CreatedBy,
			Description: fmt.Sprintf("%s: %s (%s) [%s]", p.PaymentType.Label(), FormatCurrency(p.Amount), p.Method, p.Status),
			Icon:        iconCreditCard,
		})
	}
	for _, a := range in.Attachments {
		add(entities.ActivityEvent{
			Kind:        entities.EventKindAttachment,
			Label:       "Attachment",
			Timestamp:   a.UploadedAt,
			ActorID:     a.UploadedBy,
			Description: "Attachment uploaded: " + a.FileName,
			Icon:        iconUpload,
		})
	}
	for _, r := range in.Ratings {
		desc := fmt.Sprintf("Device rated %d star(s)", r.Score)
		if c := strings.TrimSpace(r.Comment); c != "" {
			desc += ": " + c
		}
		add(entities.ActivityEvent{
			Kind:        entities.EventKindRating,
			Label:       "Rating",
			Timestamp:   r.CreatedAt,
			ActorID:     r.TechnicianID,
			Description: desc,
			Icon:        iconStar,
		})
	}
	for _, l := range in.AuditLogs {
		add(entities.ActivityEvent{
			Kind:        entities.EventKindAudit,
			Label:       "Audit",
			Timestamp:   l.Timestamp,
			ActorID:     l.UserID,
			Description: auditDescription(l),
			Icon:        iconActivity,
		})
	}
	for _, p := range in.Points {
		verb := "earned"
		if p.PointsChange < 0 {
			verb = "spent"
		}
		add(entities.ActivityEvent{
			Kind:        entities.EventKindPoints,
			Label:       "Points",
			Timestamp:   p.CreatedAt,
			ActorID:     p.CreatedBy,
			Description: fmt.Sprintf("Points %s: %d (%s) - %s", verb, absInt(p.PointsChange), p.TransactionType, p.Reason),
			Icon:        iconAward,
		})
	}
	for _, s := range in.SMSLogs {
		verb := "sent"
		if s.Direction == entities.SMSDirectionInbound {
			verb = "received"
		}
		add(entities.ActivityEvent{
			Kind:        entities.EventKindSMS,
			Label:       "SMS",
			Timestamp:   s.Timestamp(),
			ActorID:     s.SentBy,
			Description: fmt.Sprintf("SMS %s: %s", verb, preview(s.Message, smsPreviewLength)),
			Icon:        iconMessageSquare,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		if order == SortDescending {
			return feed[i].Timestamp.After(feed[j].Timestamp)
		}
		return feed[i].Timestamp.Before(feed[j].Timestamp)
	})
	return feed
}

func auditDescription(l entities.AuditLog) string {
	desc := "[Audit] " + strings.ReplaceAll(l.Action, "_", " ")
	if name, ok := l.Details["fileName"].(string); ok && name != "" {
		desc += ": " + name
	}
	return desc
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
