package store

import (
	"context"
	"sync"
)

// Memory хранит значения в памяти процесса
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory создает пустое хранилище в памяти
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get возвращает копию значения по ключу
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

// Put сохраняет копию значения по ключу
func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = append([]byte(nil), value...)
	return nil
}
