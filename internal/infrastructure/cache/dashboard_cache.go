package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/shopworks/backend/internal/application/report"
	"github.com/shopworks/backend/internal/infrastructure/config"
)

// NewRedisClient creates a Redis client from configuration and verifies the
// connection.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// RedisDashboardCache stores dashboard snapshots in Redis. Each shop's keys
// are tracked in a per-shop set so invalidation can drop every viewer's
// snapshot in one pass.
type RedisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDashboardCache creates a new RedisDashboardCache
func NewRedisDashboardCache(client *redis.Client, ttl time.Duration) *RedisDashboardCache {
	return &RedisDashboardCache{client: client, ttl: ttl}
}

// GetStats returns the cached stats snapshot, or (nil, nil) on a miss
func (c *RedisDashboardCache) GetStats(ctx context.Context, shopID uuid.UUID, viewerKey string) (*report.StatsResponse, error) {
	payload, err := c.client.Get(ctx, c.statsKey(shopID, viewerKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats report.StatsResponse
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SetStats stores the stats snapshot with the configured TTL
func (c *RedisDashboardCache) SetStats(ctx context.Context, shopID uuid.UUID, viewerKey string, stats *report.StatsResponse) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.set(ctx, shopID, c.statsKey(shopID, viewerKey), payload)
}

// GetAlerts returns the cached alerts, or (nil, nil) on a miss
func (c *RedisDashboardCache) GetAlerts(ctx context.Context, shopID uuid.UUID, viewerKey string) ([]report.Alert, error) {
	payload, err := c.client.Get(ctx, c.alertsKey(shopID, viewerKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var alerts []report.Alert
	if err := json.Unmarshal(payload, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// SetAlerts stores the alerts with the configured TTL
func (c *RedisDashboardCache) SetAlerts(ctx context.Context, shopID uuid.UUID, viewerKey string, alerts []report.Alert) error {
	payload, err := json.Marshal(alerts)
	if err != nil {
		return err
	}
	return c.set(ctx, shopID, c.alertsKey(shopID, viewerKey), payload)
}

// Invalidate drops every cached snapshot for the shop
func (c *RedisDashboardCache) Invalidate(ctx context.Context, shopID uuid.UUID) error {
	indexKey := c.indexKey(shopID)
	keys, err := c.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return err
	}

	keys = append(keys, indexKey)
	return c.client.Del(ctx, keys...).Err()
}

// Close closes the Redis client
func (c *RedisDashboardCache) Close() error {
	return c.client.Close()
}

func (c *RedisDashboardCache) set(ctx context.Context, shopID uuid.UUID, key string, payload []byte) error {
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, key, payload, c.ttl)
	pipe.SAdd(ctx, c.indexKey(shopID), key)
	// The index outlives the entries slightly so a stale member only costs
	// one extra DEL.
	pipe.Expire(ctx, c.indexKey(shopID), c.ttl*2)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *RedisDashboardCache) statsKey(shopID uuid.UUID, viewerKey string) string {
	return fmt.Sprintf("dashboard:stats:%s:%s", shopID, viewerKey)
}

func (c *RedisDashboardCache) alertsKey(shopID uuid.UUID, viewerKey string) string {
	return fmt.Sprintf("dashboard:alerts:%s:%s", shopID, viewerKey)
}

func (c *RedisDashboardCache) indexKey(shopID uuid.UUID) string {
	return fmt.Sprintf("dashboard:keys:%s", shopID)
}

// Ensure RedisDashboardCache implements DashboardCache
var _ report.DashboardCache = (*RedisDashboardCache)(nil)
