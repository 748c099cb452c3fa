package repository

import (
	"context"
	"time"

	"repair_desk/internal/usecase/interfaces"

	"github.com/patrickmn/go-cache"
)

// CachedUserDirectory keeps resolved names for a TTL so concurrent viewer
// sessions share lookups. Ids the backend did not know are not cached.
type CachedUserDirectory struct {
	next  interfaces.IUserDirectory
	cache *cache.Cache
}

var _ interfaces.IUserDirectory = (*CachedUserDirectory)(nil)

func NewCachedUserDirectory(next interfaces.IUserDirectory, ttl time.Duration) *CachedUserDirectory {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedUserDirectory{next: next, cache: cache.New(ttl, 2*ttl)}
}

func (c *CachedUserDirectory) ResolveUserNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	var missing []string
	for _, id := range ids {
		if v, ok := c.cache.Get(id); ok {
			names[id] = v.(string)
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return names, nil
	}

	resolved, err := c.next.ResolveUserNames(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, name := range resolved {
		c.cache.SetDefault(id, name)
		names[id] = name
	}
	return names, nil
}
