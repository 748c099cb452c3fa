package usecase

import (
	"context"
	"strings"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/infrastructure/metrics"
	"repair_desk/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Record kinds, used as log field and metric label.
const (
	KindDevice        = "device"
	KindTransitions   = "transitions"
	KindRemarks       = "remarks"
	KindPayments      = "payments"
	KindAttachments   = "attachments"
	KindRatings       = "ratings"
	KindAuditLogs     = "audit_logs"
	KindPoints        = "points_transactions"
	KindSMSLogs       = "sms_logs"
	KindRepairHistory = "repair_history"
)

const auditEntityDevice = "device"

// RecordStores groups the device-scoped repositories read by the activity view.
type RecordStores struct {
	Devices     interfaces.IDeviceRepository
	Transitions interfaces.ITransitionRepository
	Remarks     interfaces.IRemarkRepository
	Payments    interfaces.IPaymentRepository
	Attachments interfaces.IAttachmentRepository
	Ratings     interfaces.IRatingRepository
	AuditLogs   interfaces.IAuditLogRepository
	Points      interfaces.IPointsTransactionRepository
	SMSLogs     interfaces.ISMSLogRepository
}

// RecordFetchers reads one record kind per call. A blank device id, a
// missing store or a backend error all yield an empty result; errors are
// logged and counted, never returned.
type RecordFetchers struct {
	stores RecordStores
	logger *zap.Logger
}

func NewRecordFetchers(stores RecordStores, logger *zap.Logger) *RecordFetchers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordFetchers{stores: stores, logger: logger}
}

func fetchOrEmpty[T any](ctx context.Context, f *RecordFetchers, kind, deviceID string, list func(context.Context, string) ([]T, error)) []T {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" || list == nil {
		return []T{}
	}
	items, err := list(ctx, deviceID)
	if err != nil {
		f.fail(kind, deviceID, err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

func (f *RecordFetchers) fail(kind, deviceID string, err error) {
	metrics.FetchFailuresTotal.WithLabelValues(kind).Inc()
	f.logger.Warn("[activity][fetch] fetch failed, degrading to empty",
		zap.String("kind", kind),
		zap.String("device_id", deviceID),
		zap.Error(err),
	)
}

// Device returns the device row. found is false when the row does not
// exist; a backend error degrades to a device carrying only its id.
func (f *RecordFetchers) Device(ctx context.Context, deviceID string) (d entities.Device, found bool) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" || f.stores.Devices == nil {
		return entities.Device{}, false
	}
	d, err := f.stores.Devices.GetByID(ctx, deviceID)
	if err != nil {
		f.fail(KindDevice, deviceID, err)
		return entities.Device{ID: deviceID}, true
	}
	return d, d.ID != ""
}

func (f *RecordFetchers) Transitions(ctx context.Context, deviceID string) []entities.Transition {
	var list func(context.Context, string) ([]entities.Transition, error)
	if f.stores.Transitions != nil {
		list = f.stores.Transitions.ListByDeviceID
	}
	return fetchOrEmpty(ctx, f, KindTransitions, deviceID, list)
}

func (f *RecordFetchers) Remarks(ctx context.Context, deviceID string) []entities.Remark {
	var list func(context.Context, string) ([]entities.Remark, error)
	if f.stores.Remarks != nil {
		list = f.stores.Remarks.ListByDeviceID
	}
	return fetchOrEmpty(ctx, f, KindRemarks, deviceID, list)
}

func (f *RecordFetchers) Payments(ctx context.Context, deviceID string) []entities.Payment {
	var list func(context.Context, string) ([]entities.Payment, error)
	if f.stores.Payments != nil {
		list = f.stores.Payments.ListByDeviceID
	}
	return fetchOrEmpty(ctx, f, KindPayments, deviceID, list)
}

func (f *RecordFetchers) Attachments(ctx context.Context, deviceID string) []entities.Attachment {
	var list func(context.Context, string) ([]entities.Attachment, error)
	if f.stores.Attachments != nil {
		list = f.stores.Attachments.ListByDeviceID
	}
	return fetchOrEmpty(ctx, f, KindAttachments, deviceID, list)
}

func (f *RecordFetchers) Ratings(ctx context.Context, deviceID string) []entities.Rating {
	var list func(context.Context, string) ([]entities.Rating, error)
	if f.stores.Ratings != nil {
		list = f.stores.Ratings.ListByDeviceID
	}
	return fetchOrEmpty(ctx, f, KindRatings, deviceID, list)
}

func (f *RecordFetchers) AuditLogs(ctx context.Context, deviceID string) []entities.AuditLog {
	var list func(context.Context, string) ([]entities.AuditLog, error)
	if f.stores.AuditLogs != nil {
		list = func(ctx context.Context, id string) ([]entities.AuditLog, error) {
			return f.stores.AuditLogs.ListByEntity(ctx, auditEntityDevice, id)
		}
	}
	return fetchOrEmpty(ctx, f, KindAuditLogs, deviceID, list)
}

func (f *RecordFetchers) PointsTransactions(ctx context.Context, deviceID string) []entities.PointsTransaction {
	var list func(context.Context, string) ([]entities.PointsTransaction, error)
	if f.stores.Points != nil {
		list = f.stores.Points.ListByDeviceID
	}
	return fetchOrEmpty(ctx, f, KindPoints, deviceID, list)
}

func (f *RecordFetchers) SMSLogs(ctx context.Context, deviceID string) []entities.SMSLog {
	var list func(context.Context, string) ([]entities.SMSLog, error)
	if f.stores.SMSLogs != nil {
		list = f.stores.SMSLogs.ListByDeviceID
	}
	return fetchOrEmpty(ctx, f, KindSMSLogs, deviceID, list)
}

// RepairHistory lists the other devices sharing d's serial number.
func (f *RecordFetchers) RepairHistory(ctx context.Context, d entities.Device) []entities.Device {
	serial := strings.TrimSpace(d.SerialNumber)
	if serial == "" || f.stores.Devices == nil {
		return []entities.Device{}
	}
	all, err := f.stores.Devices.ListBySerialNumber(ctx, serial)
	if err != nil {
		f.fail(KindRepairHistory, d.ID, err)
		return []entities.Device{}
	}
	out := make([]entities.Device, 0, len(all))
	for _, other := range all {
		if other.ID != d.ID {
			out = append(out, other)
		}
	}
	return out
}
