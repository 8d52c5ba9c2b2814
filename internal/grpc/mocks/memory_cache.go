package mocks

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// MemoryCache is an in-process Cacher that round-trips values through JSON like the Redis cache does.
type MemoryCache struct {
	mu       sync.Mutex
	data     map[string]memoryEntry
	GetCalls int
	SetCalls int
	DelCalls int
}

type memoryEntry struct {
	value  []byte
	expiry time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]memoryEntry)}
}

func (c *MemoryCache) Get(ctx context.Context, key string, dest any) error {
	c.mu.Lock()
	c.GetCalls++
	entry, ok := c.data[key]
	c.mu.Unlock()

	if !ok || time.Now().After(entry.expiry) {
		return redis.Nil
	}
	return json.Unmarshal(entry.value, dest)
}

func (c *MemoryCache) Set(ctx context.Context, key string, value any, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.SetCalls++
	c.data[key] = memoryEntry{value: data, expiry: time.Now().Add(exp)}
	return nil
}

func (c *MemoryCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DelCalls++
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

// Has reports whether key holds a live entry.
func (c *MemoryCache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.data[key]
	return ok && time.Now().Before(entry.expiry)
}

func (c *MemoryCache) Close() error {
	return nil
}
