// Package ratelimit throttles credential endpoints with a Redis-backed
// sliding window.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limits caps attempts per window. A zero value disables that window.
type Limits struct {
	PerMinute int
	PerHour   int
}

// LoginLimiter counts authentication attempts per caller key (client IP)
// in Redis sorted sets, one set per window. Counting across instances in
// Redis keeps the limit global when the server runs replicated.
type LoginLimiter struct {
	client *redis.Client
	limits Limits
}

func NewLoginLimiter(client *redis.Client, limits Limits) *LoginLimiter {
	return &LoginLimiter{client: client, limits: limits}
}

// Allow records one attempt for key and reports whether it is within every
// configured window.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()

	windows := []struct {
		duration time.Duration
		limit    int
	}{
		{time.Minute, l.limits.PerMinute},
		{time.Hour, l.limits.PerHour},
	}

	for _, w := range windows {
		if w.limit <= 0 {
			continue
		}
		allowed, err := l.checkWindow(ctx, key, w.duration, w.limit, now)
		if err != nil {
			return false, err
		}
		if !allowed {
			return false, nil
		}
	}
	return true, nil
}

func (l *LoginLimiter) checkWindow(ctx context.Context, key string, window time.Duration, limit int, now time.Time) (bool, error) {
	redisKey := l.redisKey(key, window)
	windowStart := now.Add(-window).UnixNano()
	nowNano := now.UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	zcard := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(nowNano), Member: nowNano})
	pipe.Expire(ctx, redisKey, window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}

	return zcard.Val() < int64(limit), nil
}

// Reset clears every window for key. Used by tests and by support tooling
// after a lockout.
func (l *LoginLimiter) Reset(ctx context.Context, key string) error {
	iter := l.client.Scan(ctx, 0, fmt.Sprintf("login_attempts:%s:*", key), 0).Iterator()
	for iter.Next(ctx) {
		if err := l.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

func (l *LoginLimiter) redisKey(key string, window time.Duration) string {
	return fmt.Sprintf("login_attempts:%s:%s", key, window.String())
}
