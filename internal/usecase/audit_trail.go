package usecase

import (
	"context"
	"time"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuditTrail appends device audit entries. Writes are best effort: a failed
// entry is logged and never fails the command that produced it.
type AuditTrail struct {
	repo   interfaces.IAuditLogRepository
	logger *zap.Logger
}

func NewAuditTrail(repo interfaces.IAuditLogRepository, logger *zap.Logger) *AuditTrail {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditTrail{repo: repo, logger: logger}
}

func (a *AuditTrail) Record(ctx context.Context, deviceID, action, userID string, details map[string]any) {
	if a == nil || a.repo == nil {
		return
	}
	entry := entities.AuditLog{
		ID:         uuid.NewString(),
		EntityType: auditEntityDevice,
		EntityID:   deviceID,
		Action:     action,
		UserID:     userID,
		Details:    details,
		Timestamp:  time.Now().UTC(),
	}
	if _, err := a.repo.Create(ctx, entry); err != nil {
		a.logger.Warn("[audit][usecase] audit entry not written",
			zap.String("device_id", deviceID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
