// internal/scores/store.go
//
// Persistence contract for the high-score list.
// Any key-value backend (memory, SQLite, file, browser storage) satisfies it;
// implementations live in internal/kv.

package scores

import "context"

// DefaultKey is the key the high-score list is stored under.
const DefaultKey = "memorygame.high_scores"

// Store is a minimal key-value store. Writes are last-write-wins.
type Store interface {
	// Read returns the value for key and whether it exists.
	Read(ctx context.Context, key string) (string, bool, error)

	// Write stores value under key, replacing any previous value.
	Write(ctx context.Context, key, value string) error
}
