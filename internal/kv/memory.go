// internal/kv/memory.go
//
// In-memory key-value store.
// Used for tests and when SCORE_BACKEND=memory; state is lost on restart.

package kv

import (
	"context"
	"sync"
)

// Memory is a map-backed store, safe for concurrent use.
type Memory struct {
	mu sync.RWMutex // guards m
	m  map[string]string
}

// NewMemory constructs an empty Memory store.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

// Read returns the value stored under key.
func (s *Memory) Read(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

// Write replaces the value stored under key.
func (s *Memory) Write(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}
