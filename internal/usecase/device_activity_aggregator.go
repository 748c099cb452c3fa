package usecase

import (
	"context"
	"strings"
	"time"

	"repair_desk/internal/domain/entities"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DeviceActivity is everything the device detail view renders.
//
// Financials is nil when the viewer may not see money figures.
type DeviceActivity struct {
	Device        entities.Device          `json:"device"`
	Timeline      []entities.TimelineEvent `json:"timeline"`
	Activity      []entities.ActivityEvent `json:"activity"`
	Remarks       []entities.Remark        `json:"remarks"`
	Payments      []entities.Payment       `json:"payments,omitempty"`
	Attachments   []entities.Attachment    `json:"attachments"`
	Ratings       []entities.Rating        `json:"ratings"`
	Financials    *FinancialSummary        `json:"financials,omitempty"`
	Phases        RepairPhases             `json:"phases"`
	Warranty      WarrantyInfo             `json:"warranty"`
	Countdown     *Countdown               `json:"countdown,omitempty"`
	RepairHistory []entities.Device        `json:"repair_history"`
	UserNames     map[string]string        `json:"user_names"`
	Capabilities  Capabilities             `json:"capabilities"`
	GeneratedAt   time.Time                `json:"generated_at"`
}

// IDeviceActivityAggregator builds one device view. The resolver carries the
// session's name cache across loads.
type IDeviceActivityAggregator interface {
	Aggregate(ctx context.Context, deviceID string, viewer entities.User, resolver *NameResolver, order SortOrder) (DeviceActivity, error)
}

type DeviceActivityAggregator struct {
	fetchers *RecordFetchers
	logger   *zap.Logger
	now      func() time.Time
}

var _ IDeviceActivityAggregator = (*DeviceActivityAggregator)(nil)

func NewDeviceActivityAggregator(fetchers *RecordFetchers, logger *zap.Logger) *DeviceActivityAggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeviceActivityAggregator{fetchers: fetchers, logger: logger, now: time.Now}
}

// Aggregate fetches the device and every record kind concurrently, then
// resolves user names and repair history, then derives the view.
func (a *DeviceActivityAggregator) Aggregate(ctx context.Context, deviceID string, viewer entities.User, resolver *NameResolver, order SortOrder) (DeviceActivity, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return DeviceActivity{}, ErrInvalidDeviceID
	}
	if resolver == nil {
		resolver = NewNameResolver(nil, a.logger)
	}
	started := a.now()

	var (
		device  entities.Device
		found   bool
		records ActivityRecords
		history []entities.Device
		f       = a.fetchers
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { device, found = f.Device(gctx, deviceID); return nil })
	g.Go(func() error { records.Transitions = f.Transitions(gctx, deviceID); return nil })
	g.Go(func() error { records.Remarks = f.Remarks(gctx, deviceID); return nil })
	g.Go(func() error { records.Payments = f.Payments(gctx, deviceID); return nil })
	g.Go(func() error { records.Attachments = f.Attachments(gctx, deviceID); return nil })
	g.Go(func() error { records.Ratings = f.Ratings(gctx, deviceID); return nil })
	g.Go(func() error { records.AuditLogs = f.AuditLogs(gctx, deviceID); return nil })
	g.Go(func() error { records.Points = f.PointsTransactions(gctx, deviceID); return nil })
	g.Go(func() error { records.SMSLogs = f.SMSLogs(gctx, deviceID); return nil })
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return DeviceActivity{}, err
	}
	if !found {
		a.logger.Info("[activity][usecase] device not found", zap.String("device_id", deviceID))
		return DeviceActivity{}, ErrDeviceNotFound
	}

	ids := collectUserIDs(device, records)

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error { resolver.Prime(gctx, ids); return nil })
	g.Go(func() error { history = f.RepairHistory(gctx, device); return nil })
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return DeviceActivity{}, err
	}

	now := a.now()
	view := DeviceActivity{
		Device:        device,
		Timeline:      BuildTimeline(records.Transitions, order),
		Activity:      BuildActivityFeed(records, viewer.ID, order),
		Remarks:       records.Remarks,
		Attachments:   records.Attachments,
		Ratings:       records.Ratings,
		Phases:        DeriveRepairPhases(records.Transitions),
		Warranty:      DeriveWarranty(device, now),
		RepairHistory: history,
		UserNames:     resolver.Names(ids),
		Capabilities:  CapabilitiesFor(viewer, device),
		GeneratedAt:   now,
	}
	if !device.ExpectedReturnDate.IsZero() {
		c := MinimalCountdown(device.ExpectedReturnDate, now)
		view.Countdown = &c
	}
	if CanViewFinancials(viewer) {
		summary := Summarize(records.Payments, records.Attachments)
		view.Financials = &summary
		view.Payments = records.Payments
	} else {
		view.Activity = withoutKind(view.Activity, entities.EventKindPayment)
	}

	a.logger.Debug("[activity][usecase] view built",
		zap.String("device_id", deviceID),
		zap.Int("timeline_events", len(view.Timeline)),
		zap.Int("activity_events", len(view.Activity)),
		zap.Duration("elapsed", now.Sub(started)),
	)
	return view, nil
}

// collectUserIDs gathers every actor referenced by the device and its
// records; duplicates are removed by the resolver.
func collectUserIDs(d entities.Device, r ActivityRecords) []string {
	ids := []string{d.AssignedTo}
	for _, t := range r.Transitions {
		ids = append(ids, t.PerformedBy)
	}
	for _, x := range r.Remarks {
		ids = append(ids, x.CreatedBy)
	}
	for _, p := range r.Payments {
		ids = append(ids, p.CreatedBy)
	}
	for _, x := range r.Attachments {
		ids = append(ids, x.UploadedBy)
	}
	for _, x := range r.Ratings {
		ids = append(ids, x.TechnicianID)
	}
	for _, l := range r.AuditLogs {
		ids = append(ids, l.UserID)
	}
	for _, p := range r.Points {
		ids = append(ids, p.CreatedBy)
	}
	for _, s := range r.SMSLogs {
		ids = append(ids, s.SentBy)
	}

	out := ids[:0]
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

func withoutKind(events []entities.ActivityEvent, kind entities.EventKind) []entities.ActivityEvent {
	out := make([]entities.ActivityEvent, 0, len(events))
	for _, ev := range events {
		if ev.Kind != kind {
			out = append(out, ev)
		}
	}
	return out
}
