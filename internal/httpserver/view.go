package httpserver

import (
	"context"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pairs/internal/game"
)

// Card states as seen by clients.
const (
	cardDown    = "down"
	cardOpen    = "open"
	cardPeek    = "peek" // mismatched pair still shown from the last click
	cardMatched = "matched"
)

// cardView is one card; Face is omitted while the card is face-down.
type cardView struct {
	Index int    `json:"index"`
	State string `json:"state"`
	Face  string `json:"face,omitempty"`
}

// gameView is everything a client needs to draw the board.
type gameView struct {
	GameID       string      `json:"gameId"`
	Date         string      `json:"date,omitempty"`
	Phase        game.Phase  `json:"phase"`
	Cards        []cardView  `json:"cards"`
	Open         []int       `json:"open"`
	Matched      []int       `json:"matched"`
	Moves        int         `json:"moves"`
	MatchedPairs int         `json:"matchedPairs"`
	TotalPairs   int         `json:"totalPairs"`
	Won          bool        `json:"won"`
	Result       game.Result `json:"result,omitempty"`
	HighScores   []int       `json:"highScores"`
}

// render builds the client view of st. out is the outcome of the click that
// produced st, if any; highScores is the list to display.
func render(sess *game.Session, st game.State, out *game.Outcome, highScores []int) gameView {
	d := st.Deck()
	open := st.Open()
	peek := st.Peek()

	cards := make([]cardView, d.Len())
	for i := range cards {
		cv := cardView{Index: i, State: cardDown}
		switch {
		case st.IsMatched(i):
			cv.State = cardMatched
		case slices.Contains(open, i):
			cv.State = cardOpen
		case slices.Contains(peek, i):
			cv.State = cardPeek
		}
		if cv.State != cardDown {
			cv.Face, _ = d.Face(i)
		}
		cards[i] = cv
	}

	v := gameView{
		GameID:       sess.ID,
		Date:         sess.Date(),
		Phase:        st.Phase(),
		Cards:        cards,
		Open:         nonNil(open),
		Matched:      nonNil(st.Matched()),
		Moves:        st.Moves(),
		MatchedPairs: st.MatchedPairs(),
		TotalPairs:   st.TotalPairs(),
		Won:          st.Won(),
		HighScores:   nonNil(highScores),
	}
	if out != nil {
		v.Result = out.Result
	}
	return v
}

// highScores returns the list shown next to the board. A won session shows the
// list its win produced; otherwise the store is read.
func (s *Server) highScores(ctx context.Context, sess *game.Session, st game.State) []int {
	if st.Won() {
		if hs := sess.HighScores(); hs != nil {
			return hs
		}
	}
	list, err := s.scores.Scores(ctx)
	if err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("read scores for view")
		return nil
	}
	return list
}

func nonNil(xs []int) []int {
	if xs == nil {
		return []int{}
	}
	return xs
}

// renderLog is the session observer that traces every accepted transition.
func renderLog(gameID string) game.Observer {
	return func(st game.State, out game.Outcome) {
		log.Debug().
			Str("gameId", gameID).
			Str("result", string(out.Result)).
			Str("phase", string(st.Phase())).
			Int("moves", st.Moves()).
			Int("pairs", st.MatchedPairs()).
			Msg("render")
	}
}
