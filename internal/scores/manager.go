// internal/scores/manager.go
//
// High-score manager: keeps the five lowest move counts.
// Responsibilities:
//   - Read the list from the Store on every call (no cross-call cache).
//   - Insert a new score, sort ascending, keep the smallest Limit entries.
//   - Write the trimmed list back, overwriting the previous value.

package scores

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Limit is the number of scores kept.
const Limit = 5

// Manager is the only writer of the high-score key.
type Manager struct {
	store Store
	key   string
	mu    sync.Mutex // serializes read-modify-write in RecordScore
}

// NewManager returns a Manager over st. An empty key selects DefaultKey.
func NewManager(st Store, key string) *Manager {
	if key == "" {
		key = DefaultKey
	}
	return &Manager{store: st, key: key}
}

// Scores returns the stored list, or an empty list if nothing is stored.
func (m *Manager) Scores(ctx context.Context) ([]int, error) {
	raw, ok, err := m.store.Read(ctx, m.key)
	if err != nil {
		return nil, fmt.Errorf("scores: read %s: %w", m.key, err)
	}
	if !ok {
		return []int{}, nil
	}
	return Parse(raw), nil
}

// RecordScore adds score to the list and returns the updated list.
func (m *Manager) RecordScore(ctx context.Context, score int) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	list, err := m.Scores(ctx)
	if err != nil {
		return nil, err
	}
	list = append(list, score)
	sort.Ints(list)
	if len(list) > Limit {
		list = list[:Limit]
	}
	if err := m.store.Write(ctx, m.key, Format(list)); err != nil {
		return nil, fmt.Errorf("scores: write %s: %w", m.key, err)
	}
	return list, nil
}
