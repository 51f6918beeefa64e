// internal/game/engine.go
//
// Transition function for a single pairs game.
// Responsibilities:
//   - Reject clicks on out-of-range, already-open, or matched positions (no-op).
//   - Open a first card; resolve the second as match or mismatch immediately.
//   - Treat a click arriving while two cards are open as a fresh first card.
//   - Count one move per accepted click and detect the win.
//
// Click is pure: the receiver is left untouched and a new State is returned.

package game

import (
	"slices"

	"github.com/robalobadob/pairs/internal/deck"
)

// NewState returns the initial state for d: everything face-down, no moves.
func NewState(d deck.Deck) State {
	return State{
		deck:    d,
		matched: make([]bool, d.Len()),
	}
}

// Click applies a click on pos and returns the resulting state and outcome.
func (s State) Click(pos int) (State, Outcome) {
	if !s.clickable(pos) {
		return s, Outcome{Result: ResultIgnored, Position: pos, Moves: s.moves}
	}

	next := s.clone()
	next.peek = nil
	next.moves++
	out := Outcome{Position: pos}

	switch len(next.open) {
	case 0:
		next.open = []int{pos}
		out.Result = ResultOpened

	case 1:
		first := next.open[0]
		a, _ := next.deck.Face(first)
		b, _ := next.deck.Face(pos)
		next.open = nil
		if a == b {
			next.matched[first] = true
			next.matched[pos] = true
			next.pairs++
			out.Result = ResultMatched
			if next.pairs == next.deck.Pairs() {
				next.won = true
				out.Won = true
			}
		} else {
			next.peek = []int{first, pos}
			out.Result = ResultMismatched
		}

	default:
		// Two cards still open: drop them and start over with pos.
		next.open = []int{pos}
		out.Result = ResultOpened
	}

	out.Moves = next.moves
	return next, out
}

// clickable reports whether pos is inside the deck, not open and not matched.
func (s State) clickable(pos int) bool {
	if pos < 0 || pos >= s.deck.Len() || s.won {
		return false
	}
	if s.matched[pos] {
		return false
	}
	return !slices.Contains(s.open, pos)
}

func (s State) clone() State {
	return State{
		deck:    s.deck,
		open:    slices.Clone(s.open),
		peek:    slices.Clone(s.peek),
		matched: slices.Clone(s.matched),
		moves:   s.moves,
		pairs:   s.pairs,
		won:     s.won,
	}
}

// Deck returns the deck being played.
func (s State) Deck() deck.Deck { return s.deck }

// Open returns the face-up, unmatched positions.
func (s State) Open() []int { return slices.Clone(s.open) }

// Peek returns the mismatched pair still on display, if any.
func (s State) Peek() []int { return slices.Clone(s.peek) }

// Matched returns every position that belongs to a matched pair, ascending.
func (s State) Matched() []int {
	var out []int
	for i, m := range s.matched {
		if m {
			out = append(out, i)
		}
	}
	return out
}

// IsMatched reports whether pos belongs to a matched pair.
func (s State) IsMatched(pos int) bool {
	return pos >= 0 && pos < len(s.matched) && s.matched[pos]
}

// Moves is the number of accepted clicks.
func (s State) Moves() int { return s.moves }

// MatchedPairs is the number of pairs found so far.
func (s State) MatchedPairs() int { return s.pairs }

// TotalPairs is the number of pairs in the deck.
func (s State) TotalPairs() int { return s.deck.Pairs() }

// Won reports whether every pair has been found.
func (s State) Won() bool { return s.won }

// Phase reports the coarse board state.
func (s State) Phase() Phase {
	switch {
	case s.won:
		return PhaseWon
	case len(s.open) == 1:
		return PhaseOneOpen
	case len(s.open) >= 2:
		return PhaseTwoOpen
	default:
		return PhaseIdle
	}
}
