package kv

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process Store. Its zero value is ready to use.
type Memory struct {
	// Quota limits the total size of keys and values in bytes. 0 means no
	// limit.
	Quota int

	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty Memory store with no quota.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Quota > 0 {
		size := len(key) + len(value)
		for k, v := range m.values {
			if k != key {
				size += len(k) + len(v)
			}
		}
		if size > m.Quota {
			return fmt.Errorf("%w: %d bytes over a quota of %d", ErrQuotaExceeded, size, m.Quota)
		}
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

func (m *Memory) Close() error { return nil }
