// Package cache wraps a Redis client with JSON get/set helpers.
//
// The cache is strictly best-effort: when Redis is unreachable at startup, or
// a command fails at runtime, callers see a miss and carry on against the
// database. A nil *Cache behaves the same way, so tests and minimal
// deployments need no Redis at all.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lesatelierszo/zopos-backend/internal/metrics"
)

// Cache is a thin JSON layer over a single Redis connection.
type Cache struct{ rdb *redis.Client }

// New connects to Redis at addr. An empty addr or a failed ping yields a
// disabled cache rather than an error.
func New(addr, password string) *Cache {
	if addr == "" {
		return &Cache{}
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("cache: redis unavailable, running without cache: %v", err)
		return &Cache{}
	}
	return &Cache{rdb: rdb}
}

// Get retrieves a cached value by key and unmarshals it into dest.
// Returns true on a hit, false on miss or any error.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		metrics.CacheMisses.Inc()
		return false
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		metrics.CacheMisses.Inc()
		return false
	}
	metrics.CacheHits.Inc()
	return true
}

// Set stores a value under key with a TTL. Failures are ignored.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, encoded, ttl).Err(); err != nil {
		log.Printf("cache: set %s: %v", key, err)
	}
}

// Del removes keys, typically on a write that invalidates them.
func (c *Cache) Del(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache: del %v: %v", keys, err)
	}
}
