package cache

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/coocood/freecache"
)

const minMemoryCacheSize = 512 * 1024

// MemoryCache is an in-process cache, for single instance deployments and dev.
type MemoryCache struct {
	cache *freecache.Cache
}

// NewMemoryCache creates a cache holding at most sizeBytes of entries,
// least recently used entries are evicted first.
func NewMemoryCache(sizeBytes int) *MemoryCache {
	if sizeBytes < minMemoryCacheSize {
		sizeBytes = minMemoryCacheSize
	}
	return &MemoryCache{
		cache: freecache.NewCache(sizeBytes),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	value, err := c.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("memory cache get [%s]: %w", key, err)
	}
	return value, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.cache.Set([]byte(key), value, expireSeconds(ttl)); err != nil {
		return fmt.Errorf("memory cache set [%s]: %w", key, err)
	}
	return nil
}

// expireSeconds converts the ttl to whole seconds, rounding up so that a
// positive ttl never turns into freecache's "never expire" zero.
func expireSeconds(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	return int(math.Ceil(ttl.Seconds()))
}

func (c *MemoryCache) EntryCount() int64 {
	return c.cache.EntryCount()
}
