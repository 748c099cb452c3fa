package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidDeviceID     = errors.New("invalid device_id")
	ErrDeviceNotFound      = errors.New("device not found")
	ErrInvalidDeviceStatus = errors.New("invalid device status")
	ErrEmptyRemark         = errors.New("remark content is required")
	ErrForbidden           = errors.New("action not allowed for this user")
)

// IDeviceUseCase holds the commands that change a device's repair progress.
//
//   - UpdateStatus writes the new status and appends exactly one transition.
//     It reports false when the device does not exist.
//   - AddRemark appends a remark.

type IDeviceUseCase interface {
	UpdateStatus(ctx context.Context, deviceID string, status entities.DeviceStatus, actor entities.User, signature string) (bool, error)
	AddRemark(ctx context.Context, deviceID, content string, author entities.User, remarkType string) (entities.Remark, error)
}

type DeviceUseCase struct {
	devices     interfaces.IDeviceRepository
	transitions interfaces.ITransitionRepository
	remarks     interfaces.IRemarkRepository
	audit       *AuditTrail
	logger      *zap.Logger
}

var _ IDeviceUseCase = (*DeviceUseCase)(nil)

func NewDeviceUseCase(devices interfaces.IDeviceRepository, transitions interfaces.ITransitionRepository, remarks interfaces.IRemarkRepository, audit *AuditTrail, logger *zap.Logger) *DeviceUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeviceUseCase{devices: devices, transitions: transitions, remarks: remarks, audit: audit, logger: logger}
}

func (u *DeviceUseCase) UpdateStatus(ctx context.Context, deviceID string, status entities.DeviceStatus, actor entities.User, signature string) (bool, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return false, ErrInvalidDeviceID
	}
	if !status.IsValid() {
		return false, ErrInvalidDeviceStatus
	}

	device, err := u.devices.GetByID(ctx, deviceID)
	if err != nil {
		u.logger.Error("[device][usecase] load failed", zap.String("device_id", deviceID), zap.Error(err))
		return false, err
	}
	if device.ID == "" {
		return false, nil
	}
	if !CanUpdateStatus(actor, device, status) {
		u.logger.Info("[device][usecase] status update denied",
			zap.String("device_id", deviceID),
			zap.String("user_id", actor.ID),
			zap.String("role", string(actor.Role)),
			zap.String("to", string(status)),
		)
		return false, ErrForbidden
	}

	updated, err := u.devices.UpdateStatus(ctx, deviceID, status)
	if err != nil {
		u.logger.Error("[device][usecase] status write failed", zap.String("device_id", deviceID), zap.Error(err))
		return false, err
	}
	if !updated {
		return false, nil
	}

	t := entities.Transition{
		ID:          uuid.NewString(),
		DeviceID:    deviceID,
		FromStatus:  device.Status,
		ToStatus:    status,
		PerformedBy: actorID(actor),
		Signature:   strings.TrimSpace(signature),
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := u.transitions.Create(ctx, t); err != nil {
		u.logger.Error("[device][usecase] transition append failed",
			zap.String("device_id", deviceID),
			zap.String("to", string(status)),
			zap.Error(err),
		)
		u.rollbackStatus(ctx, t)
		return false, err
	}

	u.audit.Record(ctx, deviceID, entities.AuditActionStatusUpdated, t.PerformedBy, map[string]any{
		"from": string(device.Status),
		"to":   string(status),
	})
	u.logger.Info("[device][usecase] status updated",
		zap.String("device_id", deviceID),
		zap.String("from", string(device.Status)),
		zap.String("to", string(status)),
	)
	return true, nil
}

// rollbackStatus puts the device back to t.FromStatus after the transition
// for t could not be stored. A failed rollback leaves a status change with
// no transition, which is logged for manual repair.
func (u *DeviceUseCase) rollbackStatus(ctx context.Context, t entities.Transition) {
	if _, err := u.devices.UpdateStatus(context.WithoutCancel(ctx), t.DeviceID, t.FromStatus); err != nil {
		u.logger.Error("[device][usecase] status changed without transition; repair needed",
			zap.String("device_id", t.DeviceID),
			zap.String("from", string(t.FromStatus)),
			zap.String("to", string(t.ToStatus)),
			zap.String("performed_by", t.PerformedBy),
			zap.Error(err),
		)
		return
	}
	u.logger.Warn("[device][usecase] status rolled back", zap.String("device_id", t.DeviceID), zap.String("status", string(t.FromStatus)))
}

func (u *DeviceUseCase) AddRemark(ctx context.Context, deviceID, content string, author entities.User, remarkType string) (entities.Remark, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return entities.Remark{}, ErrInvalidDeviceID
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return entities.Remark{}, ErrEmptyRemark
	}
	if !CanAddRemark(author) {
		return entities.Remark{}, ErrForbidden
	}

	device, err := u.devices.GetByID(ctx, deviceID)
	if err != nil {
		return entities.Remark{}, err
	}
	if device.ID == "" {
		return entities.Remark{}, ErrDeviceNotFound
	}

	if remarkType = strings.TrimSpace(remarkType); remarkType == "" {
		remarkType = entities.RemarkTypeTechnicianNote
	}
	r := entities.Remark{
		ID:         uuid.NewString(),
		DeviceID:   deviceID,
		Content:    content,
		CreatedBy:  author.ID,
		RemarkType: remarkType,
		CreatedAt:  time.Now().UTC(),
	}
	created, err := u.remarks.Create(ctx, r)
	if err != nil {
		u.logger.Error("[device][usecase] remark create failed", zap.String("device_id", deviceID), zap.Error(err))
		return entities.Remark{}, err
	}
	return created, nil
}

// actorID records anonymous changes as system changes.
func actorID(u entities.User) string {
	if u.ID == "" {
		return entities.SystemUserID
	}
	return u.ID
}
