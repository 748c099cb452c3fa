package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

var ErrStaleView = errors.New("stale view: superseded by a newer load")

// ViewSession is one viewer's device detail screen. It owns the name cache
// for its lifetime and guarantees that a superseded load never replaces the
// current view.
type ViewSession struct {
	aggregator IDeviceActivityAggregator
	resolver   *NameResolver

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	current    *DeviceActivity
}

func NewViewSession(aggregator IDeviceActivityAggregator, resolver *NameResolver) *ViewSession {
	return &ViewSession{aggregator: aggregator, resolver: resolver}
}

// Load builds the view for deviceID. Starting a load cancels the one in
// flight; the cancelled load returns ErrStaleView.
func (s *ViewSession) Load(ctx context.Context, deviceID string, viewer entities.User, order SortOrder) (DeviceActivity, error) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	gen := s.generation
	loadCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	view, err := s.aggregator.Aggregate(loadCtx, deviceID, viewer, s.resolver, order)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return DeviceActivity{}, ErrStaleView
	}
	s.cancel = nil
	if err != nil {
		return DeviceActivity{}, err
	}
	s.current = &view
	return view, nil
}

// Current is the last view a load completed with.
func (s *ViewSession) Current() (DeviceActivity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return DeviceActivity{}, false
	}
	return *s.current, true
}

// SessionRegistry keeps view sessions by client session id and expires idle
// ones.
type SessionRegistry struct {
	aggregator IDeviceActivityAggregator
	directory  interfaces.IUserDirectory
	logger     *zap.Logger

	mu       sync.Mutex
	sessions *cache.Cache
}

func NewSessionRegistry(aggregator IDeviceActivityAggregator, directory interfaces.IUserDirectory, ttl time.Duration, logger *zap.Logger) *SessionRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &SessionRegistry{
		aggregator: aggregator,
		directory:  directory,
		logger:     logger,
		sessions:   cache.New(ttl, 2*ttl),
	}
}

// Session returns the session for id, creating it when needed. An empty id
// yields a fresh session that is not kept.
func (r *SessionRegistry) Session(id string) *ViewSession {
	if id == "" {
		return r.newSession()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.sessions.Get(id); ok {
		s := v.(*ViewSession)
		r.sessions.SetDefault(id, s)
		return s
	}
	s := r.newSession()
	r.sessions.SetDefault(id, s)
	r.logger.Debug("[activity][session] session created", zap.String("session_id", id))
	return s
}

func (r *SessionRegistry) Len() int {
	return r.sessions.ItemCount()
}

func (r *SessionRegistry) newSession() *ViewSession {
	return NewViewSession(r.aggregator, NewNameResolver(r.directory, r.logger))
}
