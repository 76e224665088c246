package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// WindowCache keeps rendered slot windows in Redis, keyed by provider
// and a per-provider generation counter. Booking mutations bump the
// generation, which orphans every cached window of that provider; the
// TTL reclaims the orphans and bounds day-0 rounding drift.
//
// A nil *WindowCache is valid and disables caching.
type WindowCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewWindowCache(redisURL string, ttlSeconds int) (*WindowCache, error) {
	if redisURL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	return &WindowCache{
		rdb: redis.NewClient(opt),
		ttl: time.Duration(ttlSeconds) * time.Second,
	}, nil
}

func (c *WindowCache) Get(ctx context.Context, providerID uint, days int) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	payload, err := c.rdb.Get(ctx, c.key(ctx, providerID, days)).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (c *WindowCache) Store(ctx context.Context, providerID uint, days int, payload []byte) {
	if c == nil {
		return
	}
	c.rdb.Set(ctx, c.key(ctx, providerID, days), payload, c.ttl)
}

func (c *WindowCache) Invalidate(ctx context.Context, providerID uint) {
	if c == nil {
		return
	}
	c.rdb.Incr(ctx, generationKey(providerID))
}

func (c *WindowCache) key(ctx context.Context, providerID uint, days int) string {
	gen, err := c.rdb.Get(ctx, generationKey(providerID)).Int64()
	if err != nil {
		gen = 0
	}
	return fmt.Sprintf("window:%d:%d:%d", providerID, gen, days)
}

func generationKey(providerID uint) string {
	return fmt.Sprintf("window:gen:%d", providerID)
}
