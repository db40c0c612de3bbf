package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hazyhaar/corrector-es/pkg/corrector"
)

type entry struct {
	res     corrector.Result
	expires time.Time
}

// Memory is an in-process cache bounded to max entries. When full, expired
// entries are dropped first, then the whole map is reset.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	max     int
	ttl     time.Duration
	now     func() time.Time
}

// NewMemory returns an in-process cache. ttl <= 0 means no expiry;
// max <= 0 means 1024 entries.
func NewMemory(max int, ttl time.Duration) *Memory {
	if max <= 0 {
		max = 1024
	}
	return &Memory{entries: make(map[string]entry), max: max, ttl: ttl, now: time.Now}
}

func (m *Memory) Get(_ context.Context, key string) (corrector.Result, bool, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || m.expired(e) {
		return corrector.Result{}, false, nil
	}
	return e.res, true, nil
}

func (m *Memory) Set(_ context.Context, key string, res corrector.Result) error {
	e := entry{res: res}
	if m.ttl > 0 {
		e.expires = m.now().Add(m.ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; !ok && len(m.entries) >= m.max {
		m.evictLocked()
	}
	m.entries[key] = e
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memory) Close() error { return nil }

func (m *Memory) expired(e entry) bool {
	return !e.expires.IsZero() && !m.now().Before(e.expires)
}

func (m *Memory) evictLocked() {
	for k, e := range m.entries {
		if m.expired(e) {
			delete(m.entries, k)
		}
	}
	if len(m.entries) >= m.max {
		clear(m.entries)
	}
}
