// internal/game/types.go
//
// Core type definitions for the pairs state machine.
// Defines:
//   - Result: what a single transition did.
//   - Phase: coarse state of the board (idle/one_open/two_open/won).
//   - Outcome: the event produced by one transition.
//   - State: immutable snapshot of one game.

package game

import "github.com/robalobadob/pairs/internal/deck"

// Result is the effect of one click.
type Result string

const (
	ResultIgnored    Result = "ignored"    // illegal target, no state change
	ResultOpened     Result = "opened"     // a card was turned face-up
	ResultMatched    Result = "matched"    // second card matched the first
	ResultMismatched Result = "mismatched" // second card did not match; pair closed
	ResultRestarted  Result = "restarted"  // the session was dealt a new deck
)

// Phase is the coarse board state.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseOneOpen Phase = "one_open"
	PhaseTwoOpen Phase = "two_open"
	PhaseWon     Phase = "won"
)

// Outcome describes one transition.
// Won is true only on the click that completed the last pair.
type Outcome struct {
	Result   Result `json:"result"`
	Position int    `json:"position"`
	Moves    int    `json:"moves"`
	Won      bool   `json:"won"`
}

// Accepted reports whether the click changed the state.
func (o Outcome) Accepted() bool { return o.Result != ResultIgnored }

// State is the full state of one game. Values are never mutated in place;
// Click returns a new State.
type State struct {
	deck    deck.Deck
	open    []int  // face-up, unmatched positions
	peek    []int  // last mismatched pair, shown until the next accepted click
	matched []bool // indexed by position
	moves   int
	pairs   int // matched pair count
	won     bool
}
