// internal/game/session.go
//
// Session owns the state of one running game and wires it to its collaborators.
// Responsibilities:
//   - Serialize clicks so each one runs to completion before the next.
//   - Notify observers (renderers) after every accepted transition.
//   - Forward the win to the score recorder exactly once per game.
//   - Restart with a fresh deck on replay.

package game

import (
	"context"
	"slices"
	"sync"

	"github.com/robalobadob/pairs/internal/deck"
)

// ScoreRecorder receives the final move count of a won game and returns the
// updated high-score list.
type ScoreRecorder interface {
	RecordScore(ctx context.Context, score int) ([]int, error)
}

// Observer is called with the new state after every accepted click or restart.
type Observer func(State, Outcome)

// Session is a single game bound to an ID.
type Session struct {
	ID string

	mu         sync.Mutex
	date       string // daily date key, empty for random decks
	state      State
	recorder   ScoreRecorder
	observers  []Observer
	reported   bool
	highScores []int
}

// NewSession starts a game on d. recorder may be nil.
func NewSession(id string, d deck.Deck, recorder ScoreRecorder) *Session {
	return &Session{ID: id, state: NewState(d), recorder: recorder}
}

// NewDailySession starts a game on the shared deck of date.
func NewDailySession(id string, d deck.Deck, date string, recorder ScoreRecorder) *Session {
	s := NewSession(id, d, recorder)
	s.date = date
	return s
}

// Date returns the daily date key, or "" when the deck was random.
func (s *Session) Date() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date
}

// Subscribe registers fn to be called after every accepted transition.
func (s *Session) Subscribe(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Click applies a click on pos. Ignored clicks return the unchanged state and
// do not notify observers. The returned error only reports a failure to record
// the score on win; the transition itself is kept.
func (s *Session) Click(ctx context.Context, pos int) (State, Outcome, error) {
	s.mu.Lock()
	next, out := s.state.Click(pos)
	if !out.Accepted() {
		s.mu.Unlock()
		return next, out, nil
	}
	s.state = next

	var err error
	if out.Won && !s.reported {
		s.reported = true
		if s.recorder != nil {
			var scores []int
			if scores, err = s.recorder.RecordScore(ctx, out.Moves); err == nil {
				s.highScores = scores
			}
		}
	}
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(next, out)
	}
	return next, out, err
}

// Restart discards the current game and starts again on the random deck d.
func (s *Session) Restart(d deck.Deck) State {
	s.mu.Lock()
	s.state = NewState(d)
	s.date = ""
	s.reported = false
	s.highScores = nil
	st := s.state
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(st, Outcome{Result: ResultRestarted, Position: -1})
	}
	return st
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// HighScores returns the list recorded when this session last won, if any.
func (s *Session) HighScores() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.highScores)
}
