// Package persist mirrors the task collection into a local key-value store.
package persist

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"tododay/internal/config"
)

// ErrNotFound is returned by KV.Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// KV is a minimal key-value store.
type KV interface {
	// Get returns the stored value, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases the underlying resources.
	Close() error
}

// Open opens the backend selected by cfg.
func Open(ctx context.Context, cfg *config.Config) (KV, error) {
	st := cfg.Storage
	switch st.Backend {
	case "", config.BackendFile:
		dir := st.Path
		if dir == "" {
			dir = cfg.DataDir()
		}
		kv, err := NewFileKV(dir)
		if err != nil {
			return nil, err
		}
		return kv, nil
	case config.BackendSQLite:
		path := st.Path
		if path == "" {
			path = filepath.Join(cfg.DataDir(), "tododay.db")
		}
		kv, err := OpenSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		return kv, nil
	case config.BackendRedis:
		kv, err := OpenRedis(ctx, st.RedisAddr, st.RedisDB, st.RedisPrefix)
		if err != nil {
			return nil, err
		}
		return kv, nil
	case config.BackendMemory:
		return NewMemoryKV(), nil
	}
	return nil, fmt.Errorf("unknown storage backend: %s", st.Backend)
}

// MemoryKV keeps values in process memory.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryKV) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryKV) Close() error { return nil }
