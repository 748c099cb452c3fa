package interfaces

import (
	"context"

	"repair_desk/internal/domain/entities"
)

// IDeviceRepository abstracts DynamoDB persistence for Device.
//
// GetByID returns a zero Device (empty ID) when the row does not exist.
// UpdateStatus reports false when the device is missing.

type IDeviceRepository interface {
	GetByID(ctx context.Context, id string) (entities.Device, error)
	ListBySerialNumber(ctx context.Context, serialNumber string) ([]entities.Device, error)
	UpdateStatus(ctx context.Context, id string, status entities.DeviceStatus) (bool, error)
}
