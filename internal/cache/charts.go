package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "covid:chart:"

// Charts stores rendered chart images keyed by request and dataset version.
type Charts interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

func ChartKey(version uint64, parts ...string) string {
	key := fmt.Sprintf("%sv%d", keyPrefix, version)
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

type redisCharts struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisCharts(client redis.UniversalClient, ttl time.Duration) Charts {
	return &redisCharts{client: client, ttl: ttl}
}

func (c *redisCharts) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, true, nil
}

func (c *redisCharts) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// memoryCharts is used when no redis is configured. The dataset version is part of
// every key, so stale entries are simply never read again; the map is bounded by size.
type memoryCharts struct {
	mu      sync.RWMutex
	entries map[string][]byte
	limit   int
}

func NewMemoryCharts(limit int) Charts {
	return &memoryCharts{entries: make(map[string][]byte), limit: limit}
}

func (c *memoryCharts) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.entries[key]
	return b, ok, nil
}

func (c *memoryCharts) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.limit {
		clear(c.entries)
	}
	c.entries[key] = value
	return nil
}
