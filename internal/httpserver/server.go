// internal/httpserver/server.go
//
// HTTP server wiring for the pairs backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "GET /scores".
//   - Game endpoints: POST /game/new, and token-gated POST /game/click,
//     POST /game/restart, GET /game/{id}, DELETE /game/{id}.
//   - Dealing random or daily decks from the configured face set.
//
// Notes:
//   - Each game gets its own signed token; a token only unlocks its own game.
//   - Face values of face-down cards never leave the server.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pairs/internal/daily"
	"github.com/robalobadob/pairs/internal/deck"
	"github.com/robalobadob/pairs/internal/game"
	"github.com/robalobadob/pairs/internal/scores"
	"github.com/robalobadob/pairs/internal/store"
)

// Options carries the server's collaborators and settings.
type Options struct {
	Sessions     store.Store
	Scores       *scores.Manager
	Faces        []string // faces dealt into every deck
	Secret       string   // token signing key
	TokenTTL     time.Duration
	DailySalt    string
	ClientOrigin string
	Now          func() time.Time // defaults to time.Now
}

// Server bundles router, session store and high-score manager.
type Server struct {
	r        *chi.Mux
	sessions store.Store
	scores   *scores.Manager
	faces    []string
	tokens   tokenIssuer
	salt     string
	now      func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	s := &Server{
		r:        chi.NewRouter(),
		sessions: opts.Sessions,
		scores:   opts.Scores,
		faces:    opts.Faces,
		tokens:   tokenIssuer{secret: []byte(opts.Secret), ttl: opts.TokenTTL, now: now},
		salt:     opts.DailySalt,
		now:      now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.ClientOrigin},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           60 * 15,
	}))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"pairs-go","endpoints":["/health","/scores","POST /game/new","POST /game/click","POST /game/restart","GET /game/{id}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Get("/scores", s.handleScores)
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Group(func(r chi.Router) {
		r.Use(s.requireGameToken)
		r.Post("/game/click", s.handleClick)
		r.Post("/game/restart", s.handleRestart)
		r.Get("/game/{id}", s.handleGet)
		r.Delete("/game/{id}", s.handleDelete)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// ------------------------------ SCORES -------------------------------------

type scoresRes struct {
	Scores []int `json:"scores"`
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	list, err := s.scores.Scores(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("read scores")
		writeError(w, http.StatusInternalServerError, "scores_unavailable")
		return
	}
	_ = json.NewEncoder(w).Encode(scoresRes{Scores: list})
}

// ------------------------------- GAME --------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Daily bool `json:"daily"` // deal today's shared deck instead of a random one
}
type newGameRes struct {
	GameID    string   `json:"gameId"`
	Token     string   `json:"token"`
	ExpiresAt string   `json:"expiresAt"`
	Date      string   `json:"date,omitempty"`
	View      gameView `json:"view"`
}

// deal builds a deck; daily decks are seeded from today's date.
func (s *Server) deal(dailyDeck bool) (deck.Deck, string, error) {
	if !dailyDeck {
		d, err := deck.Random(s.faces)
		return d, "", err
	}
	now := s.now()
	seed, err := daily.Seed(now, s.salt)
	if err != nil {
		return deck.Deck{}, "", err
	}
	d, err := deck.Seeded(s.faces, seed)
	return d, daily.DateKey(now), err
}

// handleNewGame creates a session, stores it and hands out its token.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		// An empty body means a random deck; anything else must be valid JSON.
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	d, date, err := s.deal(req.Daily)
	if err != nil {
		log.Error().Err(err).Msg("deal deck")
		writeError(w, http.StatusInternalServerError, "deal_failed")
		return
	}

	var sess *game.Session
	if date != "" {
		sess = game.NewDailySession(uuid.NewString(), d, date, s.scores)
	} else {
		sess = game.NewSession(uuid.NewString(), d, s.scores)
	}
	sess.Subscribe(renderLog(sess.ID))
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	tok, exp, err := s.tokens.sign(sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	log.Info().Str("gameId", sess.ID).Int("cards", d.Len()).Bool("daily", req.Daily).Msg("game started")

	st := sess.State()

	_ = json.NewEncoder(w).Encode(newGameRes{
		GameID:    sess.ID,
		Token:     tok,
		ExpiresAt: exp.UTC().Format(time.RFC3339),
		Date:      date,
		View:      render(sess, st, nil, s.highScores(r.Context(), sess, st)),
	})
}

// clickReq is the payload for POST /game/click.
type clickReq struct {
	GameID   string `json:"gameId"`
	Position *int   `json:"position"`
}

// handleClick applies one card click and returns the new view.
func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	var req clickReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Position == nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess, ok := s.session(w, r, req.GameID)
	if !ok {
		return
	}

	st, out, err := sess.Click(r.Context(), *req.Position)
	if err != nil {
		// The win stands; only the high-score list could not be updated.
		log.Warn().Err(err).Str("gameId", sess.ID).Int("moves", out.Moves).Msg("record score")
	}
	if out.Won {
		log.Info().Str("gameId", sess.ID).Int("moves", out.Moves).Msg("game won")
	}
	_ = json.NewEncoder(w).Encode(render(sess, st, &out, s.highScores(r.Context(), sess, st)))
}

// restartReq is the payload for POST /game/restart.
type restartReq struct {
	GameID string `json:"gameId"`
}

// handleRestart deals a new deck into an existing session.
// The new deck is always random, so restarting a daily game leaves daily mode.
func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	var req restartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess, ok := s.session(w, r, req.GameID)
	if !ok {
		return
	}
	d, err := deck.Random(s.faces)
	if err != nil {
		log.Error().Err(err).Msg("deal deck")
		writeError(w, http.StatusInternalServerError, "deal_failed")
		return
	}
	st := sess.Restart(d)
	_ = json.NewEncoder(w).Encode(render(sess, st, nil, s.highScores(r.Context(), sess, st)))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	st := sess.State()
	_ = json.NewEncoder(w).Encode(render(sess, st, nil, s.highScores(r.Context(), sess, st)))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	if err := s.sessions.Delete(r.Context(), sess.ID); err != nil {
		log.Error().Err(err).Str("gameId", sess.ID).Msg("delete session")
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// session resolves id to a live session the caller's token is allowed to use.
// It writes the error response itself and reports false on failure.
func (s *Server) session(w http.ResponseWriter, r *http.Request, id string) (*game.Session, bool) {
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing_game_id")
		return nil, false
	}
	if gid, _ := r.Context().Value(ctxGameKey{}).(string); gid != id {
		writeError(w, http.StatusForbidden, "forbidden")
		return nil, false
	}
	sess, err := s.sessions.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Str("gameId", id).Msg("load session")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return nil, false
	}
	return sess, true
}
