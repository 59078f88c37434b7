package snapshot

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

type memoryEntry struct {
	payload []byte
	expires time.Time
}

// Memory is an in-process TTL store, the default when no Redis address is
// configured and the backing store for tests.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
	log     *zap.Logger
	now     func() time.Time
}

// NewMemory builds an in-process store with the given TTL.
func NewMemory(ttl time.Duration, log *zap.Logger) *Memory {
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		log:     log,
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string, dst any) bool {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || m.now().After(entry.expires) {
		return false
	}
	if err := json.Unmarshal(entry.payload, dst); err != nil {
		m.log.Warn("snapshot undecodable", zap.String("key", key), zap.Error(err))
		m.Invalidate(context.Background(), key)
		return false
	}
	return true
}

func (m *Memory) Set(_ context.Context, key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		m.log.Warn("snapshot unencodable", zap.String("key", key), zap.Error(err))
		return
	}
	m.mu.Lock()
	m.entries[key] = memoryEntry{payload: payload, expires: m.now().Add(m.ttl)}
	m.mu.Unlock()
}

func (m *Memory) Invalidate(_ context.Context, key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}
