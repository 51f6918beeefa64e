package game

import (
	"reflect"
	"testing"

	"github.com/robalobadob/pairs/internal/deck"
)

func mustDeck(t *testing.T, order ...string) deck.Deck {
	t.Helper()
	d, err := deck.FromFaces(order)
	if err != nil {
		t.Fatalf("FromFaces(%v): %v", order, err)
	}
	return d
}

func clickAll(s State, positions ...int) (State, []Outcome) {
	var outs []Outcome
	for _, p := range positions {
		var o Outcome
		s, o = s.Click(p)
		outs = append(outs, o)
	}
	return s, outs
}

func TestMatchWinsSmallDeck(t *testing.T) {
	s := NewState(mustDeck(t, "A", "A"))
	s, outs := clickAll(s, 0, 1)

	if outs[0].Result != ResultOpened || outs[1].Result != ResultMatched {
		t.Fatalf("unexpected results: %+v", outs)
	}
	if !outs[1].Won || !s.Won() || s.Phase() != PhaseWon {
		t.Fatalf("expected win, got %+v phase=%s", outs[1], s.Phase())
	}
	if outs[1].Moves != 2 {
		t.Fatalf("expected 2 moves on win, got %d", outs[1].Moves)
	}
}

func TestScenarioMatch(t *testing.T) {
	s := NewState(mustDeck(t, "A", "B", "A", "B"))
	s, outs := clickAll(s, 0, 2)

	if outs[1].Result != ResultMatched {
		t.Fatalf("expected match, got %s", outs[1].Result)
	}
	if s.MatchedPairs() != 1 || s.Moves() != 2 {
		t.Fatalf("pairs=%d moves=%d", s.MatchedPairs(), s.Moves())
	}
	if len(s.Open()) != 0 {
		t.Fatalf("open set should be empty, got %v", s.Open())
	}
	if !reflect.DeepEqual(s.Matched(), []int{0, 2}) {
		t.Fatalf("matched = %v", s.Matched())
	}
	if s.Won() {
		t.Fatal("one of two pairs should not win")
	}
}

func TestScenarioMismatch(t *testing.T) {
	s := NewState(mustDeck(t, "A", "B", "A", "B"))
	s, outs := clickAll(s, 0, 1)

	if outs[1].Result != ResultMismatched {
		t.Fatalf("expected mismatch, got %s", outs[1].Result)
	}
	if len(s.Open()) != 0 || s.MatchedPairs() != 0 || s.Moves() != 2 {
		t.Fatalf("open=%v pairs=%d moves=%d", s.Open(), s.MatchedPairs(), s.Moves())
	}
	if !reflect.DeepEqual(s.Peek(), []int{0, 1}) {
		t.Fatalf("mismatched pair should be on display, got %v", s.Peek())
	}

	// The next accepted click clears the displayed pair.
	s, _ = s.Click(1)
	if len(s.Peek()) != 0 || !reflect.DeepEqual(s.Open(), []int{1}) {
		t.Fatalf("peek=%v open=%v", s.Peek(), s.Open())
	}
}

func TestIgnoredClicks(t *testing.T) {
	s := NewState(mustDeck(t, "A", "B", "A", "B"))
	s, _ = s.Click(0)

	tests := []struct {
		name string
		pos  int
	}{
		{"same open card", 0},
		{"negative", -1},
		{"past end", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, out := s.Click(tt.pos)
			if out.Result != ResultIgnored || out.Accepted() {
				t.Fatalf("expected ignored, got %s", out.Result)
			}
			if next.Moves() != s.Moves() || len(next.Open()) != len(s.Open()) {
				t.Fatalf("ignored click changed state: moves %d->%d open %v->%v",
					s.Moves(), next.Moves(), s.Open(), next.Open())
			}
		})
	}

	// Matched cards are no longer clickable.
	s, _ = s.Click(2)
	next, out := s.Click(0)
	if out.Accepted() || next.Moves() != s.Moves() {
		t.Fatalf("click on matched card was accepted: %+v", out)
	}
}

func TestThirdClickWithTwoOpen(t *testing.T) {
	s := NewState(mustDeck(t, "A", "B", "A", "B"))
	s.open = []int{0, 1}
	s.moves = 2
	if s.Phase() != PhaseTwoOpen {
		t.Fatalf("phase = %s", s.Phase())
	}

	next, out := s.Click(3)
	if out.Result != ResultOpened {
		t.Fatalf("expected opened, got %s", out.Result)
	}
	if !reflect.DeepEqual(next.Open(), []int{3}) {
		t.Fatalf("open = %v, want [3]", next.Open())
	}
	if next.Moves() != 3 {
		t.Fatalf("moves = %d, want 3", next.Moves())
	}
	if next.MatchedPairs() != 0 {
		t.Fatal("clearing the open pair must not score it")
	}
}

func TestMoveCountPerAcceptedClick(t *testing.T) {
	s := NewState(mustDeck(t, "A", "B", "C", "A", "B", "C"))
	clicks := []int{0, 1, 1, 4, 0, 3, 3, 2, 5, 9, 1, 4}
	accepted := 0
	for _, p := range clicks {
		before := s.Moves()
		var out Outcome
		s, out = s.Click(p)
		if out.Accepted() {
			accepted++
			if s.Moves() != before+1 {
				t.Fatalf("click %d: moves %d -> %d", p, before, s.Moves())
			}
		} else if s.Moves() != before {
			t.Fatalf("ignored click %d changed moves", p)
		}
		if n := len(s.Open()); n > 1 {
			t.Fatalf("open set grew to %d", n)
		}
	}
	if s.Moves() != accepted {
		t.Fatalf("moves=%d accepted=%d", s.Moves(), accepted)
	}
	if !s.Won() {
		t.Fatalf("expected the sequence to win, pairs=%d", s.MatchedPairs())
	}
}

func TestClickDoesNotMutateReceiver(t *testing.T) {
	s := NewState(mustDeck(t, "A", "B", "A", "B"))
	s1, _ := s.Click(0)
	_, _ = s1.Click(2)

	if s.Moves() != 0 || len(s.Open()) != 0 {
		t.Fatal("original state was mutated")
	}
	if s1.Moves() != 1 || !reflect.DeepEqual(s1.Open(), []int{0}) || s1.IsMatched(0) {
		t.Fatal("intermediate state was mutated")
	}
}

func TestNoClicksAfterWin(t *testing.T) {
	s := NewState(mustDeck(t, "A", "A"))
	s, _ = clickAll(s, 0, 1)
	next, out := s.Click(0)
	if out.Accepted() || out.Won || next.Moves() != 2 {
		t.Fatalf("click after win was accepted: %+v", out)
	}
}
