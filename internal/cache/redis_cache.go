package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

type RedisCache struct {
	redisClient *redis.Client
}

func NewRedisCache(redisClient *redis.Client) *RedisCache {
	return &RedisCache{
		redisClient: redisClient,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.redis.get")
	defer func() {
		if errors.Is(err, ErrNotFound) {
			// a miss is not a failure
			tracing.EndSpanWithErrCheck(span, nil)
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cmd := c.redisClient.Get(ctx, key)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			span.SetAttributes(attribute.Bool("hit", false))
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get [%s]: %w", key, err)
	}

	span.SetAttributes(attribute.Bool("hit", true))
	return []byte(cmd.Val()), nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.redis.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := c.redisClient.Set(ctx, key, string(value), ttl).Err(); err != nil {
		return fmt.Errorf("redis set [%s]: %w", key, err)
	}
	return nil
}
