package cache

import (
	"context"
	"sync"
	"time"
)

// Cache stores serialized recommendation responses keyed by a request
// digest. The engine is deterministic, so identical requests can be
// answered from the cache safely.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte)
}

// Memory is the default process-local cache with TTL eviction on read.
type Memory struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]memEntry
}

type memEntry struct {
	val     []byte
	expires time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Memory{ttl: ttl, m: map[string]memEntry{}}
}

func (c *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.m[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expires) {
		delete(c.m, key)
		return nil, false
	}
	return e.val, true
}

func (c *Memory) Set(_ context.Context, key string, val []byte) {
	c.mu.Lock()
	c.m[key] = memEntry{val: val, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}
