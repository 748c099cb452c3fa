package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"repair_desk/internal/domain/entities"
	mock_interfaces "repair_desk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDeviceActivityUseCase_GetActivity(t *testing.T) {
	uc := NewDeviceActivityUseCase(NewSessionRegistry(&blockingAggregator{}, nil, time.Minute, nil), nil)

	if _, err := uc.GetActivity(context.Background(), "tab-1", "", admin, SortAscending); !errors.Is(err, ErrInvalidDeviceID) {
		t.Fatalf("expected ErrInvalidDeviceID, got %v", err)
	}

	view, err := uc.GetActivity(context.Background(), "tab-1", " dev-1 ", admin, SortAscending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Device.ID != "dev-1" {
		t.Fatalf("expected trimmed device id, got %q", view.Device.ID)
	}
}

func TestDeviceActivityUseCase_GetCountdownTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	devices := mock_interfaces.NewMockIDeviceRepository(ctrl)
	uc := NewDeviceActivityUseCase(nil, devices)
	due := time.Date(2026, 5, 1, 17, 0, 0, 0, time.UTC)

	gomock.InOrder(
		devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1", ExpectedReturnDate: due}, nil),
		devices.EXPECT().GetByID(gomock.Any(), "dev-2").Return(entities.Device{}, nil),
		devices.EXPECT().GetByID(gomock.Any(), "dev-3").Return(entities.Device{}, errors.New("db")),
	)

	got, err := uc.GetCountdownTarget(context.Background(), "dev-1")
	if err != nil || !got.Equal(due) {
		t.Fatalf("expected %v, got %v err=%v", due, got, err)
	}
	if _, err := uc.GetCountdownTarget(context.Background(), "dev-2"); !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("expected ErrDeviceNotFound, got %v", err)
	}
	if _, err := uc.GetCountdownTarget(context.Background(), "dev-3"); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
	if _, err := uc.GetCountdownTarget(context.Background(), ""); !errors.Is(err, ErrInvalidDeviceID) {
		t.Fatalf("expected ErrInvalidDeviceID, got %v", err)
	}
}
