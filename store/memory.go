package store

import (
	"context"
	"sync"
)

// Memory is an in-process Repository, lost on restart.
type Memory struct {
	ids     *ids
	mu      sync.RWMutex
	records map[string]HealthCheck
	closed  bool
}

func NewMemory() *Memory {
	return &Memory{
		ids:     newIDs(),
		records: make(map[string]HealthCheck),
	}
}

func (m *Memory) Create(ctx context.Context, hc HealthCheck) (HealthCheck, error) {
	if err := ctx.Err(); err != nil {
		return HealthCheck{}, err
	}
	hc, err := m.ids.prepare(hc)
	if err != nil {
		return HealthCheck{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return HealthCheck{}, ErrClosed
	}
	m.records[hc.ID] = hc
	return hc, nil
}

func (m *Memory) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return 0, ErrClosed
	}
	return int64(len(m.records)), nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.records = nil
	return nil
}
