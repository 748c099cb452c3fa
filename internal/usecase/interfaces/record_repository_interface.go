package interfaces

import (
	"context"

	"repair_desk/internal/domain/entities"
)

// Device-scoped record stores. Every List method returns the records of one
// device in storage order; callers sort.

type ITransitionRepository interface {
	ListByDeviceID(ctx context.Context, deviceID string) ([]entities.Transition, error)
	Create(ctx context.Context, t entities.Transition) (entities.Transition, error)
}

type IRemarkRepository interface {
	ListByDeviceID(ctx context.Context, deviceID string) ([]entities.Remark, error)
	Create(ctx context.Context, r entities.Remark) (entities.Remark, error)
}

type IPaymentRepository interface {
	ListByDeviceID(ctx context.Context, deviceID string) ([]entities.Payment, error)
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
}

type IAttachmentRepository interface {
	ListByDeviceID(ctx context.Context, deviceID string) ([]entities.Attachment, error)
	// GetByID returns the zero Attachment when no record exists.
	GetByID(ctx context.Context, id string) (entities.Attachment, error)
	Create(ctx context.Context, a entities.Attachment) (entities.Attachment, error)
	Delete(ctx context.Context, id string) error
}

type IRatingRepository interface {
	ListByDeviceID(ctx context.Context, deviceID string) ([]entities.Rating, error)
}

type IAuditLogRepository interface {
	ListByEntity(ctx context.Context, entityType, entityID string) ([]entities.AuditLog, error)
	Create(ctx context.Context, l entities.AuditLog) (entities.AuditLog, error)
}

type IPointsTransactionRepository interface {
	ListByDeviceID(ctx context.Context, deviceID string) ([]entities.PointsTransaction, error)
}

type ISMSLogRepository interface {
	ListByDeviceID(ctx context.Context, deviceID string) ([]entities.SMSLog, error)
	Create(ctx context.Context, l entities.SMSLog) (entities.SMSLog, error)
}
