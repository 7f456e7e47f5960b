package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/turmab/helpdesk/internal/core/ports"
)

const (
	throttleKeyPrefix  = "login:fail:"
	defaultMaxFailures = 5
	defaultWindow      = 15 * time.Minute
)

// LoginThrottle counts failed login attempts per e-mail in Redis. Each
// failure bumps a counter whose TTL is refreshed to the lockout window; once
// the counter reaches the budget the identifier is blocked until the key
// expires.
type LoginThrottle struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
}

var _ ports.LoginThrottle = (*LoginThrottle)(nil)

func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{
		client:      client,
		maxFailures: defaultMaxFailures,
		window:      defaultWindow,
	}
}

func (t *LoginThrottle) key(identifier string) string {
	return throttleKeyPrefix + identifier
}

func (t *LoginThrottle) Blocked(ctx context.Context, identifier string) (bool, error) {
	count, err := t.client.Get(ctx, t.key(identifier)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle get: %w", err)
	}
	return count >= t.maxFailures, nil
}

func (t *LoginThrottle) RecordFailure(ctx context.Context, identifier string) error {
	key := t.key(identifier)

	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, t.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	return nil
}

func (t *LoginThrottle) Reset(ctx context.Context, identifier string) error {
	if err := t.client.Del(ctx, t.key(identifier)).Err(); err != nil {
		return fmt.Errorf("throttle reset: %w", err)
	}
	return nil
}
