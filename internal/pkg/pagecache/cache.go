package pagecache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores rendered page payloads in Redis under a common key prefix,
// each entry expiring after its TTL. Writes elsewhere in the system never
// invalidate entries: a cached page may keep serving content whose backing
// rows are already gone, until the entry expires or Clear is called.
type Cache struct {
	rdb    *redis.Client
	prefix string
}

func New(rdb *redis.Client, prefix string) *Cache {
	return &Cache{rdb: rdb, prefix: prefix}
}

// GetOrRender returns the cached payload for key. On a miss or after expiry
// it invokes render, stores the result for ttl and returns it. hit reports
// whether the payload came from the cache without invoking render.
func (c *Cache) GetOrRender(ctx context.Context, key string, ttl time.Duration, render func() ([]byte, error)) ([]byte, bool, error) {
	full := c.prefix + key

	payload, err := c.rdb.Get(ctx, full).Bytes()
	if err == nil {
		return payload, true, nil
	}
	if !errors.Is(err, redis.Nil) {
		return nil, false, err
	}

	payload, err = render()
	if err != nil {
		return nil, false, err
	}

	if err := c.rdb.Set(ctx, full, payload, ttl).Err(); err != nil {
		return nil, false, err
	}
	return payload, false, nil
}

// Clear drops every entry under the cache prefix.
func (c *Cache) Clear(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, c.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
