package cache

import (
	"context"
	"sync"
	"time"
)

// Memory is a process-local map. No eviction, no expiry, no capacity bound.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
}

var _ Cache = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

func (c *Memory) Get(_ context.Context, key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *Memory) Set(_ context.Context, key string, value string, _ time.Duration) bool {
	c.mu.Lock()
	c.entries[key] = value
	c.mu.Unlock()
	return true
}

// Len reports the number of stored keys, including keys holding "".
func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
