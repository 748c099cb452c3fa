package usecase

import (
	"context"
	"sync"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	unknownUserName = "Unknown"
	systemUserName  = "System"
	shortIDLength   = 8
)

// NameResolver maps user ids to display names for one view session.
//
// Names resolved by Prime are cached for the lifetime of the resolver; ids
// that were never resolved fall back to a shortened id.
type NameResolver struct {
	directory interfaces.IUserDirectory
	logger    *zap.Logger

	mu    sync.RWMutex
	names map[string]string
}

func NewNameResolver(directory interfaces.IUserDirectory, logger *zap.Logger) *NameResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NameResolver{directory: directory, logger: logger, names: map[string]string{}}
}

// Prime resolves every id that is neither empty, "system" nor already cached
// in a single directory lookup. Lookup failures are logged and leave the
// cache untouched.
func (r *NameResolver) Prime(ctx context.Context, ids []string) {
	pending := r.pending(ids)
	if len(pending) == 0 || r.directory == nil {
		return
	}

	resolved, err := r.directory.ResolveUserNames(ctx, pending)
	if err != nil {
		r.logger.Warn("[identity][usecase] user name lookup failed",
			zap.Int("ids", len(pending)),
			zap.Error(err),
		)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, name := range resolved {
		if name != "" {
			r.names[id] = name
		}
	}
}

func (r *NameResolver) pending(ids []string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || id == entities.SystemUserID {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := r.names[id]; ok {
			continue
		}
		out = append(out, id)
	}
	return out
}

// Name never fails: "" is Unknown, "system" is System, and unresolved ids
// are cut to their first 8 characters.
func (r *NameResolver) Name(id string) string {
	if id == "" {
		return unknownUserName
	}

	r.mu.RLock()
	name, ok := r.names[id]
	r.mu.RUnlock()
	if ok {
		return name
	}

	if id == entities.SystemUserID {
		return systemUserName
	}
	if len(id) <= shortIDLength {
		return id + "..."
	}
	return id[:shortIDLength] + "..."
}

// Names returns the display name of every id given.
func (r *NameResolver) Names(ids []string) map[string]string {
	out := make(map[string]string, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		out[id] = r.Name(id)
	}
	return out
}
