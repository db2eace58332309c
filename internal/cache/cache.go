package cache

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("cache: key not found")

var _ Cache = (*RedisCache)(nil)
var _ Cache = (*MemoryCache)(nil)

// Cache stores opaque values with a TTL. Get returns ErrNotFound on a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
