package storage

import (
	"context"
	"slices"
	"sync"
)

// Memory keeps the state in memory, for tests and throw-away sessions.
type Memory struct {
	mu   sync.Mutex
	data []byte
}

// NewMemory returns a memory backend holding data, nil meaning nothing stored.
func NewMemory(data []byte) *Memory { return &Memory{data: slices.Clone(data)} }

func (m *Memory) String() string { return "memory" }
func (m *Memory) Close() error   { return nil }

func (m *Memory) Read(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrEmpty
	}
	return slices.Clone(m.data), nil
}

func (m *Memory) Write(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = slices.Clone(data)
	return nil
}
