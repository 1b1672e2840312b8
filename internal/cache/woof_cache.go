// Package cache holds the Redis read-through cache for the woof timeline.
// Every successful woof insert invalidates the cached list.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"woofer/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

const keyTimeline = "woofs:timeline"

// WoofCache caches the full woof list in Redis with a TTL.
type WoofCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewWoofCache returns a new WoofCache.
func NewWoofCache(rdb *redis.Client, ttl time.Duration) *WoofCache {
	return &WoofCache{rdb: rdb, ttl: ttl}
}

// GetTimeline returns the cached list, or nil on a miss.
func (c *WoofCache) GetTimeline(ctx context.Context) ([]model.Woof, error) {
	b, err := c.rdb.Get(ctx, keyTimeline).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []model.Woof
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetTimeline stores the list in cache.
func (c *WoofCache) SetTimeline(ctx context.Context, list []model.Woof) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyTimeline, b, c.ttl).Err()
}

// Invalidate removes the cached timeline (cache invalidation on write).
func (c *WoofCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyTimeline).Err()
}
