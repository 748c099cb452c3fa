package usecase

import (
	"context"
	"strings"
	"time"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"
)

// IDeviceActivityUseCase serves the device detail view and its countdown.
type IDeviceActivityUseCase interface {
	GetActivity(ctx context.Context, sessionID, deviceID string, viewer entities.User, order SortOrder) (DeviceActivity, error)
	GetCountdownTarget(ctx context.Context, deviceID string) (time.Time, error)
}

type DeviceActivityUseCase struct {
	sessions *SessionRegistry
	devices  interfaces.IDeviceRepository
}

var _ IDeviceActivityUseCase = (*DeviceActivityUseCase)(nil)

func NewDeviceActivityUseCase(sessions *SessionRegistry, devices interfaces.IDeviceRepository) *DeviceActivityUseCase {
	return &DeviceActivityUseCase{sessions: sessions, devices: devices}
}

func (u *DeviceActivityUseCase) GetActivity(ctx context.Context, sessionID, deviceID string, viewer entities.User, order SortOrder) (DeviceActivity, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return DeviceActivity{}, ErrInvalidDeviceID
	}
	return u.sessions.Session(strings.TrimSpace(sessionID)).Load(ctx, deviceID, viewer, order)
}

// GetCountdownTarget returns the expected return date. A zero time means the
// device has none.
func (u *DeviceActivityUseCase) GetCountdownTarget(ctx context.Context, deviceID string) (time.Time, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return time.Time{}, ErrInvalidDeviceID
	}
	d, err := u.devices.GetByID(ctx, deviceID)
	if err != nil {
		return time.Time{}, err
	}
	if d.ID == "" {
		return time.Time{}, ErrDeviceNotFound
	}
	return d.ExpectedReturnDate, nil
}
