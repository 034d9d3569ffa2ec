package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// SlotCache keeps rendered availability pages per coach. Keys carry a
// per-coach version; mutations bump the version instead of scanning for
// keys, so stale pages simply age out via TTL. A nil cache is a no-op.
type SlotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotCache(addr string, ttl time.Duration) *SlotCache {
	if addr == "" {
		return nil
	}

	return &SlotCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

func (c *SlotCache) version(ctx context.Context, coachID uint) int64 {
	v, err := c.rdb.Get(ctx, fmt.Sprintf("slots:ver:%d", coachID)).Int64()
	if err != nil {
		return 0
	}
	return v
}

func (c *SlotCache) key(ctx context.Context, coachID uint, query string) string {
	return fmt.Sprintf("slots:%d:%d:%s", coachID, c.version(ctx, coachID), query)
}

func (c *SlotCache) Get(ctx context.Context, coachID uint, query string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	b, err := c.rdb.Get(ctx, c.key(ctx, coachID, query)).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *SlotCache) Set(ctx context.Context, coachID uint, query string, payload []byte) {
	if c == nil {
		return
	}
	c.rdb.Set(ctx, c.key(ctx, coachID, query), payload, c.ttl)
}

// Bump invalidates every cached page of the coach.
func (c *SlotCache) Bump(ctx context.Context, coachID uint) {
	if c == nil {
		return
	}
	c.rdb.Incr(ctx, fmt.Sprintf("slots:ver:%d", coachID))
}
