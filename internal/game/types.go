// internal/game/types.go
//
// Core type definitions for the word-guess game engine.
// Defines:
//   - Status: lifecycle state of a session (in progress / won / lost / forfeited).
//   - Category, Difficulty: closed enumerations validated at the boundary.
//   - Limits: per-session guess/clue quotas frozen at creation.
//   - Session: state for a single in-progress or finished game.

package game

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a session. Terminal states are
// absorbing: no guess or clue is accepted once a session leaves
// StatusInProgress.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
	StatusForfeited  Status = "forfeited"
)

// Terminal reports whether the session has ended.
func (s Status) Terminal() bool { return s != StatusInProgress }

// Category is the word topic requested when starting a game.
type Category string

const (
	CategoryTech        Category = "tech"
	CategoryAnimals     Category = "animals"
	CategoryPlaces      Category = "places"
	CategoryScience     Category = "science"
	CategoryInteresting Category = "interesting"
	CategoryRandom      Category = "random"
)

var categories = map[Category]bool{
	CategoryTech:        true,
	CategoryAnimals:     true,
	CategoryPlaces:      true,
	CategoryScience:     true,
	CategoryInteresting: true,
	CategoryRandom:      true,
}

// ParseCategory validates a raw category string against the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !categories[c] {
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidInput, s)
	}
	return c, nil
}

// Difficulty is the named tier deciding the session limits.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates a raw difficulty string against the closed set.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, s)
}

// Limits are the governing quotas for a session, derived once from the
// difficulty at creation and never changed afterwards.
type Limits struct {
	MaxWrong int // maximum incorrect guesses before the game is lost
	MaxClues int // maximum AI clues per session
}

// Session holds the state of a single game. Clients only ever see a
// projection of it; the secret stays server-side until the game ends.
//
// Secret is always lowercase. Guesses preserves insertion order and
// never contains the same normalized token twice.
type Session struct {
	ID           string
	OwnerID      string
	Secret       string
	Guesses      []string
	WrongCount   int
	Category     Category
	Difficulty   Difficulty
	Limits       Limits
	Clues        []string
	Status       Status
	StartedAt    time.Time
	EndedAt      time.Time // zero while in progress; set once, on the terminal transition
	RevealedInfo string    // memoized post-game trivia
}

// Display derives the player-visible mask from the secret and the
// guesses made so far. It is recomputed on demand rather than stored, so
// the rendering can never drift from the underlying state.
func (s *Session) Display() string {
	return RenderMask(s.Secret, s.Guesses)
}

// hasGuessed reports whether a normalized token was already submitted.
func (s *Session) hasGuessed(token string) bool {
	for _, g := range s.Guesses {
		if g == token {
			return true
		}
	}
	return false
}

// Clone returns a deep copy. Store implementations hand out clones so
// callers can mutate a loaded session without aliasing stored state.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Guesses = append([]string(nil), s.Guesses...)
	cp.Clues = append([]string(nil), s.Clues...)
	return &cp
}

// Normalize trims and lowercases a raw guess token.
func Normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}
