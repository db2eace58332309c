package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fitlog-session||"
	tokenLength      = 35
)

var ErrUnauthorized = errors.New("unauthorized")

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// Service issues and revokes session tokens. The identity provider
// authenticating the user sits in front of it.
type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewService(ttl time.Duration, redisClient *redis.Client) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (s *Service) CreateSession(ctx context.Context, userID uuid.UUID) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.session.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	token, err := s.RandStringFunc(tokenLength)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	if err := s.redisClient.Set(ctx, sessionKey(token), userID.String(), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

func (s *Service) DeleteSession(ctx context.Context, token string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.session.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	deleted, err := s.redisClient.Del(ctx, sessionKey(token)).Result()
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

// SessionChecker resolves session tokens into user ids.
type SessionChecker struct {
	redisClient *redis.Client
}

func NewSessionChecker(redisClient *redis.Client) *SessionChecker {
	return &SessionChecker{
		redisClient: redisClient,
	}
}

// UserID returns ErrUnauthorized for unknown or expired tokens.
func (c *SessionChecker) UserID(ctx context.Context, token string) (_ uuid.UUID, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.session.user_id")
	defer func() {
		if errors.Is(err, ErrUnauthorized) {
			tracing.EndSpanWithErrCheck(span, nil)
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if token == "" {
		return uuid.Nil, ErrUnauthorized
	}

	val, err := c.redisClient.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrUnauthorized
		}
		return uuid.Nil, fmt.Errorf("get session: %w", err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: corrupt session value", ErrUnauthorized)
	}

	return userID, nil
}
