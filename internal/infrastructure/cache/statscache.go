package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"redress/internal/domain/complaint"
	sharedConfig "redress/internal/shared/config"
)

const statsKey = "complaints:stats"

// ErrCacheMiss is returned when no cached statistics snapshot exists.
var ErrCacheMiss = errors.New("statistics not cached")

// StatsCache keeps a short-lived snapshot of the complaint statistics in
// Redis so the dashboard does not run the GROUP BY on every request. The
// use case treats every cache failure as a miss and falls back to the
// database, so an unavailable Redis never breaks the endpoint.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client, ttlSeconds int) *StatsCache {
	if ttlSeconds <= 0 {
		ttlSeconds = 60
	}
	return &StatsCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

// NewRedisClient builds the shared Redis client from config.
func NewRedisClient(cfg *sharedConfig.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func (c *StatsCache) Get(ctx context.Context) (*complaint.Statistics, error) {
	payload, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read cached statistics: %w", err)
	}

	var stats complaint.Statistics
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode cached statistics: %w", err)
	}
	return &stats, nil
}

func (c *StatsCache) Set(ctx context.Context, stats *complaint.Statistics) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode statistics: %w", err)
	}
	if err := c.client.Set(ctx, statsKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache statistics: %w", err)
	}
	return nil
}

// Invalidate drops the snapshot after a write that changes the breakdown.
func (c *StatsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, statsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate statistics cache: %w", err)
	}
	return nil
}
