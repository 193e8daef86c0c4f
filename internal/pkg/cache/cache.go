package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin optional read-through cache for hot public lists
// (packages, destinations). A nil *Cache is valid and does nothing, so
// callers never branch on whether redis is configured.
type Cache struct {
	rdb *redis.Client
}

func New(addr, password string) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *Cache) Set(ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, raw, ttl).Err()
}

func (c *Cache) Del(ctx context.Context, keys ...string) {
	if c == nil {
		return
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}
