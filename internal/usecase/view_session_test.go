package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"repair_desk/internal/domain/entities"
	mock_interfaces "repair_desk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// blockingAggregator holds its first call until that call is cancelled.
type blockingAggregator struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	err     error
}

func (a *blockingAggregator) Aggregate(ctx context.Context, deviceID string, _ entities.User, _ *NameResolver, _ SortOrder) (DeviceActivity, error) {
	a.mu.Lock()
	a.calls++
	first := a.calls == 1
	a.mu.Unlock()

	if first && a.started != nil {
		close(a.started)
		<-ctx.Done()
		return DeviceActivity{}, ctx.Err()
	}
	if a.err != nil {
		return DeviceActivity{}, a.err
	}
	return DeviceActivity{Device: entities.Device{ID: deviceID}}, nil
}

func TestViewSession_SupersededLoadIsStale(t *testing.T) {
	agg := &blockingAggregator{started: make(chan struct{})}
	s := NewViewSession(agg, NewNameResolver(nil, nil))

	firstErr := make(chan error, 1)
	go func() {
		_, err := s.Load(context.Background(), "dev-1", admin, SortAscending)
		firstErr <- err
	}()
	<-agg.started

	view, err := s.Load(context.Background(), "dev-2", admin, SortAscending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Device.ID != "dev-2" {
		t.Fatalf("expected dev-2, got %s", view.Device.ID)
	}

	select {
	case err := <-firstErr:
		if !errors.Is(err, ErrStaleView) {
			t.Fatalf("expected ErrStaleView, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("superseded load did not return")
	}

	cur, ok := s.Current()
	if !ok || cur.Device.ID != "dev-2" {
		t.Fatalf("current view must be the newest load, got %+v ok=%v", cur, ok)
	}
}

func TestViewSession_ErrorKeepsPreviousView(t *testing.T) {
	agg := &blockingAggregator{}
	s := NewViewSession(agg, nil)

	if _, ok := s.Current(); ok {
		t.Fatalf("new session has no view")
	}
	if _, err := s.Load(context.Background(), "dev-1", admin, SortAscending); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	agg.err = ErrDeviceNotFound
	if _, err := s.Load(context.Background(), "dev-1", admin, SortAscending); !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("expected ErrDeviceNotFound, got %v", err)
	}
	cur, ok := s.Current()
	if !ok || cur.Device.ID != "dev-1" {
		t.Fatalf("failed load must not clear the view, got %+v", cur)
	}
}

func TestSessionRegistry(t *testing.T) {
	r := NewSessionRegistry(&blockingAggregator{}, nil, time.Minute, nil)

	a := r.Session("tab-1")
	if a != r.Session("tab-1") {
		t.Fatalf("same id must return the same session")
	}
	if a == r.Session("tab-2") {
		t.Fatalf("different ids must not share a session")
	}
	if r.Session("") == r.Session("") {
		t.Fatalf("anonymous sessions are never shared")
	}
	if r.Len() != 2 {
		t.Fatalf("expected 2 kept sessions, got %d", r.Len())
	}
}

func TestSessionRegistry_SessionKeepsNameCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	dir := mock_interfaces.NewMockIUserDirectory(ctrl)
	r := NewSessionRegistry(&blockingAggregator{}, dir, 0, nil)

	dir.EXPECT().ResolveUserNames(gomock.Any(), []string{"u1"}).Return(map[string]string{"u1": "Alice"}, nil).Times(1)

	r.Session("tab-1").resolver.Prime(context.Background(), []string{"u1"})
	r.Session("tab-1").resolver.Prime(context.Background(), []string{"u1"})
	if got := r.Session("tab-1").resolver.Name("u1"); got != "Alice" {
		t.Fatalf("expected cached name, got %q", got)
	}
}
