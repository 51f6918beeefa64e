package daily

import (
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns a deterministic 32-byte deck seed for a date using keyed BLAKE2b-256(salt, YYYY-MM-DD).
// The salt must be 1 to 64 bytes.
func Seed(date time.Time, salt string) ([32]byte, error) {
	var out [32]byte
	if len(salt) == 0 || len(salt) > blake2b.Size {
		return out, fmt.Errorf("daily: salt must be 1-%d bytes, got %d", blake2b.Size, len(salt))
	}
	h, err := blake2b.New256([]byte(salt))
	if err != nil {
		return out, fmt.Errorf("daily: %w", err)
	}
	h.Write([]byte(DateKey(date)))
	copy(out[:], h.Sum(nil))
	return out, nil
}
