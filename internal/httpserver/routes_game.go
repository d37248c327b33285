// internal/httpserver/routes_game.go
//
// HTTP routes for game sessions (all require auth):
//   - POST /games/start        → create a session (AI-generated secret)
//   - GET  /games/mine         → recent sessions for the current user
//   - GET  /games/{id}         → current projection of a session
//   - POST /games/{id}/guess   → submit a letter or full-phrase guess
//   - GET  /games/{id}/clue    → request the next AI clue
//   - GET  /games/{id}/info    → post-game trivia about the word
//   - POST /games/{id}/end     → forfeit a live session
//
// Handlers are thin: ownership check, delegate to the game lifecycle,
// map domain errors to status codes, encode the projection. The secret
// is only included once the session is terminal.

package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/wordguess/go-server/internal/game"
)

// mountGameRoutes registers all /games endpoints.
func (s *Server) mountGameRoutes() {
	s.r.Route("/games", func(r chi.Router) {
		r.Use(s.requireAuth())
		r.Post("/start", s.handleStartGame)
		r.Get("/mine", s.handleMyGames)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetGame)
			r.Post("/guess", s.handleGuess)
			r.Get("/clue", s.handleClue)
			r.Get("/info", s.handleInfo)
			r.Post("/end", s.handleForfeit)
		})
	})
}

// gameView is the client-facing projection of a session.
type gameView struct {
	ID                  string     `json:"id"`
	WordDisplay         string     `json:"wordDisplay"`
	IncorrectGuesses    int        `json:"incorrectGuesses"`
	MaxIncorrectGuesses int        `json:"maxIncorrectGuesses"`
	MaxCluesAllowed     int        `json:"maxCluesAllowed"`
	Guesses             []string   `json:"guesses"`
	Clues               []string   `json:"clues"`
	Category            string     `json:"category"`
	Difficulty          string     `json:"difficulty"`
	Status              string     `json:"status"`
	IsGameOver          bool       `json:"isGameOver"`
	IsWon               bool       `json:"isWon"`
	StartedAt           time.Time  `json:"startedAt"`
	EndedAt             *time.Time `json:"endedAt,omitempty"`
	WordToGuess         string     `json:"wordToGuess,omitempty"` // set only when terminal
}

// viewOf projects a session for the client. The secret is withheld
// while the game is still in progress.
func viewOf(g *game.Session) gameView {
	v := gameView{
		ID:                  g.ID,
		WordDisplay:         g.Display(),
		IncorrectGuesses:    g.WrongCount,
		MaxIncorrectGuesses: g.Limits.MaxWrong,
		MaxCluesAllowed:     g.Limits.MaxClues,
		Guesses:             g.Guesses,
		Clues:               g.Clues,
		Category:            string(g.Category),
		Difficulty:          string(g.Difficulty),
		Status:              string(g.Status),
		IsGameOver:          g.Status.Terminal(),
		IsWon:               g.Status == game.StatusWon,
		StartedAt:           g.StartedAt,
	}
	if !g.EndedAt.IsZero() {
		t := g.EndedAt
		v.EndedAt = &t
	}
	if g.Status.Terminal() {
		v.WordToGuess = g.Secret
	}
	return v
}

// writeGameError maps domain errors to HTTP status codes.
func writeGameError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrOracle):
		status = http.StatusServiceUnavailable
	case errors.Is(err, game.ErrInvalidInput),
		errors.Is(err, game.ErrDuplicateGuess),
		errors.Is(err, game.ErrSessionTerminal),
		errors.Is(err, game.ErrClueLimitReached),
		errors.Is(err, game.ErrGameNotOver):
		status = http.StatusBadRequest
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// loadOwned loads a session and enforces ownership. Writes the error
// response itself and returns nil when the caller should bail out.
func (s *Server) loadOwned(w http.ResponseWriter, r *http.Request) *game.Session {
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	if me == nil {
		http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
		return nil
	}
	g, err := s.life.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeGameError(w, err)
		return nil
	}
	if g.OwnerID != me.ID {
		http.Error(w, `{"error":"Not authorized to access this game session"}`, http.StatusForbidden)
		return nil
	}
	return g
}

// -----------------------------------------------------------------------------
// POST /games/start

type startReq struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	var req startReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	g, err := s.life.Start(r.Context(), me.ID, req.Category, req.Difficulty)
	if err != nil {
		log.Warn().Err(err).Str("user", me.ID).Msg("start game")
		writeGameError(w, err)
		return
	}
	log.Info().Str("gameId", g.ID).Str("category", string(g.Category)).
		Str("difficulty", string(g.Difficulty)).Msg("game started")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message": fmt.Sprintf("Game started! Category: %s, Difficulty: %s", g.Category, g.Difficulty),
		"game":    viewOf(g),
	})
}

// -----------------------------------------------------------------------------
// GET /games/{id}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g := s.loadOwned(w, r)
	if g == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message": "Current game state retrieved.",
		"game":    viewOf(g),
	})
}

// -----------------------------------------------------------------------------
// POST /games/{id}/guess

type guessReq struct {
	Guess string `json:"guess"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	g := s.loadOwned(w, r)
	if g == nil {
		return
	}
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	res, err := s.life.Guess(r.Context(), g, req.Guess)
	if err != nil {
		writeGameError(w, err)
		return
	}
	// Session just finished: fold the result into user stats.
	if g.Status.Terminal() {
		s.recordResult(g.OwnerID, g.Status == game.StatusWon)
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message":      res.Message,
		"correctGuess": res.Correct,
		"game":         viewOf(g),
	})
}

// -----------------------------------------------------------------------------
// GET /games/{id}/clue

func (s *Server) handleClue(w http.ResponseWriter, r *http.Request) {
	g := s.loadOwned(w, r)
	if g == nil {
		return
	}
	clue, err := s.life.RequestClue(r.Context(), g)
	if err != nil {
		writeGameError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message":        fmt.Sprintf("Clue %d/%d generated.", len(g.Clues), g.Limits.MaxClues),
		"clue":           clue,
		"allClues":       g.Clues,
		"cluesRemaining": g.Limits.MaxClues - len(g.Clues),
	})
}

// -----------------------------------------------------------------------------
// GET /games/{id}/info

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	g := s.loadOwned(w, r)
	if g == nil {
		return
	}
	info, err := s.life.RevealInfo(r.Context(), g)
	if err != nil {
		writeGameError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message": fmt.Sprintf("Information for %q.", g.Secret),
		"word":    g.Secret,
		"info":    info,
	})
}

// -----------------------------------------------------------------------------
// POST /games/{id}/end

func (s *Server) handleForfeit(w http.ResponseWriter, r *http.Request) {
	g := s.loadOwned(w, r)
	if g == nil {
		return
	}
	if err := s.life.Forfeit(r.Context(), g); err != nil {
		writeGameError(w, err)
		return
	}
	s.recordResult(g.OwnerID, false)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message": "Game session forfeited.",
		"game":    viewOf(g),
	})
}

// -----------------------------------------------------------------------------
// GET /games/mine

func (s *Server) handleMyGames(w http.ResponseWriter, r *http.Request) {
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	rows, err := s.db.Query(`SELECT id, status, category, difficulty, wrong_count, started_at, COALESCE(ended_at,'')
	                         FROM sessions WHERE owner_id=? ORDER BY started_at DESC LIMIT 50`, me.ID)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	type sessionRow struct {
		ID         string `json:"id"`
		Status     string `json:"status"`
		Category   string `json:"category"`
		Difficulty string `json:"difficulty"`
		Incorrect  int    `json:"incorrectGuesses"`
		StartedAt  string `json:"startedAt"`
		EndedAt    string `json:"endedAt,omitempty"`
	}
	out := []sessionRow{}
	for rows.Next() {
		var sr sessionRow
		if err := rows.Scan(&sr.ID, &sr.Status, &sr.Category, &sr.Difficulty, &sr.Incorrect, &sr.StartedAt, &sr.EndedAt); err == nil {
			out = append(out, sr)
		}
	}
	_ = json.NewEncoder(w).Encode(out)
}
