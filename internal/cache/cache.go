// Package cache stores JSON encoded query results in Redis. Every key carries
// a generation id so entries written for another catalog load are never read.
package cache

import (
	"context"
	"encoding/json"
	"github.com/go-redis/redis/v9"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"time"
)

const keyPrefix = "PC-"

type logger interface {
	Debugf(format string, v ...any)
	Errorf(format string, v ...any)
}

type Cache struct {
	Redis      *redis.Client
	Generation string
	TTL        time.Duration
	Logger     logger
}

func New(addr string, ttl time.Duration, l logger) Cache {
	return Cache{
		Redis:      redis.NewClient(&redis.Options{Addr: addr}),
		Generation: uuid.NewString(),
		TTL:        ttl,
		Logger:     l,
	}
}

func (c Cache) Key(k string) string {
	return keyPrefix + c.Generation + "-" + k
}

// Get decodes the entry stored under k into dest and reports whether it was
// found. Errors are logged and reported as a miss.
func (c Cache) Get(ctx context.Context, k string, dest any) bool {
	key := c.Key(k)
	cached, err := c.Redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.Logger.Errorf("Get: Error getting Redis cache with key: %s, err: %v", key, err)
		}
		return false
	}
	if err = json.Unmarshal(cached, dest); err != nil {
		c.Logger.Errorf("Get: Error unmarshalling cache, key: %s, err: %v", key, err)
		return false
	}
	c.Logger.Debugf("Get: Cache found, key: %s", key)
	return true
}

func (c Cache) Set(ctx context.Context, k string, v any) {
	key := c.Key(k)
	vJSON, err := json.Marshal(v)
	if err != nil {
		c.Logger.Errorf("Set: Error marshalling value to cache, key: %s, err: %v", key, err)
		return
	}
	if err = c.Redis.Set(ctx, key, vJSON, c.TTL).Err(); err != nil {
		c.Logger.Errorf("Set: Error caching value, key: %s, err: %v", key, err)
	}
}

func (c Cache) Ping(ctx context.Context) error {
	return errors.Wrapf(c.Redis.Ping(ctx).Err(), "error pinging Redis at %s", c.Redis.Options().Addr)
}

func (c Cache) Close() error {
	return c.Redis.Close()
}
