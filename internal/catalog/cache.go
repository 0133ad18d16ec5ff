package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 10 * time.Minute

// Cache provides Redis-backed level caching in front of the curated sources.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache wraps a Redis client for level lookups.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) key(id int) string {
	return fmt.Sprintf("catalog:level:%d", id)
}

// Get returns a cached level or nil on miss.
func (c *Cache) Get(ctx context.Context, id int) (*Level, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Set stores a level for the configured TTL.
func (c *Cache) Set(ctx context.Context, lvl Level) error {
	data, err := json.Marshal(lvl)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(lvl.ID), data, c.ttl).Err()
}
