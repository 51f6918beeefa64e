// internal/deck/deck.go
//
// Card and deck types for the pairs game.
// Responsibilities:
//   - Build a deck holding every face exactly twice.
//   - Shuffle it once at creation (random, seeded, or fixed order).
//   - Expose read-only queries; a Deck never changes after construction.

package deck

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrNoFaces is returned when a deck is requested with no faces.
	ErrNoFaces = errors.New("deck: no faces")
	// ErrDuplicateFace is returned when the face list repeats an identifier.
	ErrDuplicateFace = errors.New("deck: duplicate face")
	// ErrUnpaired is returned by FromFaces when a face does not appear exactly twice.
	ErrUnpaired = errors.New("deck: face does not appear exactly twice")
)

// Card is one position in the deck together with its face value.
type Card struct {
	Position int    `json:"position"`
	Face     string `json:"face"`
}

// Deck is an ordered, immutable sequence of cards.
type Deck struct {
	faces []string
}

// New creates a deck containing each face twice, shuffled with rng.
func New(faces []string, rng *rand.Rand) (Deck, error) {
	if len(faces) == 0 {
		return Deck{}, ErrNoFaces
	}
	seen := make(map[string]struct{}, len(faces))
	for _, f := range faces {
		if _, dup := seen[f]; dup {
			return Deck{}, fmt.Errorf("%w: %q", ErrDuplicateFace, f)
		}
		seen[f] = struct{}{}
	}

	out := make([]string, 0, 2*len(faces))
	out = append(out, faces...)
	out = append(out, faces...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return Deck{faces: out}, nil
}

// Random creates a deck shuffled from a crypto/rand seed.
func Random(faces []string) (Deck, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return Deck{}, fmt.Errorf("deck: seed: %w", err)
	}
	return Seeded(faces, seed)
}

// Seeded creates a deck whose order is fully determined by seed.
func Seeded(faces []string, seed [32]byte) (Deck, error) {
	return New(faces, rand.New(rand.NewChaCha8(seed)))
}

// FromFaces builds a deck with the given order, unshuffled.
// Every face must appear exactly twice.
func FromFaces(order []string) (Deck, error) {
	if len(order) == 0 {
		return Deck{}, ErrNoFaces
	}
	counts := make(map[string]int, len(order)/2)
	for _, f := range order {
		counts[f]++
	}
	for f, n := range counts {
		if n != 2 {
			return Deck{}, fmt.Errorf("%w: %q appears %d times", ErrUnpaired, f, n)
		}
	}
	return Deck{faces: append([]string(nil), order...)}, nil
}

// Len is the number of cards.
func (d Deck) Len() int { return len(d.faces) }

// Pairs is the number of distinct faces.
func (d Deck) Pairs() int { return len(d.faces) / 2 }

// Face returns the face at pos, or false when pos is out of range.
func (d Deck) Face(pos int) (string, bool) {
	if pos < 0 || pos >= len(d.faces) {
		return "", false
	}
	return d.faces[pos], true
}

// Cards returns a copy of the deck as cards in position order.
func (d Deck) Cards() []Card {
	out := make([]Card, len(d.faces))
	for i, f := range d.faces {
		out[i] = Card{Position: i, Face: f}
	}
	return out
}
