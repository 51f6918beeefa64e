// internal/faces/faces.go
//
// Face-set management for the deck builder.
//
// Responsibilities:
//   - Load face identifiers from an operator-provided file or fall back to the
//     embedded defaults in assets/faces.txt.
//   - Normalize entries (trim, lowercase, skip blanks and # comments, dedupe).
//   - Select the first n faces for a deck of n pairs.
//
// Environment:
//   FACES_FILE=/path/to/faces.txt (read by the config package, passed to Resolve)

package faces

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/pairs/assets"
)

// ErrEmpty is returned when a face source yields no usable identifiers.
var ErrEmpty = errors.New("faces: list is empty")

// Resolve loads faces from path when set, otherwise the embedded defaults.
func Resolve(path string) ([]string, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Default returns the embedded face list.
func Default() ([]string, error) {
	lines, err := assets.FaceList()
	if err != nil {
		return nil, fmt.Errorf("faces: read embedded list: %w", err)
	}
	out := normalize(lines)
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}

// Load reads one face identifier per line from path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("faces: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a face list from r.
func Read(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("faces: scan: %w", err)
	}
	out := normalize(lines)
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}

// Pick returns the first n faces of all.
func Pick(all []string, n int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("faces: need at least one pair, got %d", n)
	}
	if n > len(all) {
		return nil, fmt.Errorf("faces: %d pairs requested but only %d faces available", n, len(all))
	}
	return append([]string(nil), all[:n]...), nil
}

// normalize lowercases and trims lines, dropping blanks, comments and repeats.
func normalize(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		s := strings.ToLower(strings.TrimSpace(line))
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
