// internal/game/lifecycle.go
//
// Session lifecycle orchestration.
// Responsibilities:
//   - Create sessions (validated enums, oracle-supplied secret).
//   - Gate guess and clue submission, forfeits, and post-game trivia.
//   - Persist the full session after every mutation.
//
// The lifecycle is the single authority for "is this session over";
// handlers never branch on raw fields. All state lives in the Session
// value passed through the call chain — there is no process-wide mutable
// state here, and the only blocking call is the single oracle request
// (no retry; the caller decides whether to try again).

package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Oracle supplies secrets, clues, and post-game trivia. Implementations
// are injected, never ambient, so tests can substitute a deterministic
// fake. Failures must wrap ErrOracle.
type Oracle interface {
	GenerateWord(ctx context.Context, category Category, difficulty Difficulty) (string, error)
	GenerateClue(ctx context.Context, c ClueContext) (string, error)
	GenerateInfo(ctx context.Context, word string) (string, error)
}

// ClueContext is everything the oracle needs to produce a progressively
// more specific, non-repeating, non-revealing clue.
type ClueContext struct {
	Secret     string
	Display    string
	Clues      []string
	Guesses    []string
	WrongCount int
	MaxWrong   int
}

// Store persists sessions. Save must be atomic per session; Get of an
// unknown id returns ErrNotFound. Implementations may be backed by
// memory, SQLite, etc.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
}

// Lifecycle owns session creation and every state transition.
type Lifecycle struct {
	store  Store
	oracle Oracle
	now    func() time.Time
}

// NewLifecycle wires a lifecycle over a store and an oracle.
func NewLifecycle(store Store, oracle Oracle) *Lifecycle {
	return &Lifecycle{store: store, oracle: oracle, now: func() time.Time { return time.Now().UTC() }}
}

// Start validates category and difficulty, obtains a secret from the
// oracle, and persists a fresh in-progress session. Enum validation
// happens before the oracle is contacted.
func (l *Lifecycle) Start(ctx context.Context, ownerID, rawCategory, rawDifficulty string) (*Session, error) {
	category, err := ParseCategory(rawCategory)
	if err != nil {
		return nil, err
	}
	difficulty, err := ParseDifficulty(rawDifficulty)
	if err != nil {
		return nil, err
	}
	limits, err := LimitsFor(difficulty)
	if err != nil {
		return nil, err
	}

	word, err := l.oracle.GenerateWord(ctx, category, difficulty)
	if err != nil {
		return nil, err
	}
	word = Normalize(word)
	if len(word) < 3 {
		return nil, fmt.Errorf("%w: unusable word %q", ErrOracle, word)
	}

	s := &Session{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		Secret:     word,
		Guesses:    []string{},
		Category:   category,
		Difficulty: difficulty,
		Limits:     limits,
		Clues:      []string{},
		Status:     StatusInProgress,
		StartedAt:  l.now(),
	}
	if err := l.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s, nil
}

// Get loads a session by id. Ownership checks are the caller's job; the
// session exposes OwnerID for exactly that.
func (l *Lifecycle) Get(ctx context.Context, id string) (*Session, error) {
	return l.store.Get(ctx, id)
}

// Guess applies one guess and persists the result.
func (l *Lifecycle) Guess(ctx context.Context, s *Session, token string) (*Result, error) {
	res, err := s.ApplyGuess(token, l.now())
	if err != nil {
		return nil, err
	}
	if err := l.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return res, nil
}

// RequestClue enforces the clue quota and sequencing, then appends the
// oracle's text. Quota and liveness are checked before the oracle is
// contacted; the clue content itself is opaque here.
func (l *Lifecycle) RequestClue(ctx context.Context, s *Session) (string, error) {
	if s.Status.Terminal() {
		return "", ErrSessionTerminal
	}
	if len(s.Clues) >= s.Limits.MaxClues {
		return "", ErrClueLimitReached
	}
	clue, err := l.oracle.GenerateClue(ctx, ClueContext{
		Secret:     s.Secret,
		Display:    s.Display(),
		Clues:      s.Clues,
		Guesses:    s.Guesses,
		WrongCount: s.WrongCount,
		MaxWrong:   s.Limits.MaxWrong,
	})
	if err != nil {
		return "", err
	}
	s.Clues = append(s.Clues, clue)
	if err := l.store.Save(ctx, s); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return clue, nil
}

// Forfeit ends a live session as forfeited. Forfeiting twice is an
// error, not a no-op, so callers can detect stale state.
func (l *Lifecycle) Forfeit(ctx context.Context, s *Session) error {
	if s.Status.Terminal() {
		return ErrSessionTerminal
	}
	s.finish(StatusForfeited, l.now())
	if err := l.store.Save(ctx, s); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// RevealInfo returns trivia about the secret once the session is over.
// The text is fetched from the oracle at most once per session and
// cached; repeat calls return the stored value.
func (l *Lifecycle) RevealInfo(ctx context.Context, s *Session) (string, error) {
	if !s.Status.Terminal() {
		return "", ErrGameNotOver
	}
	if s.RevealedInfo != "" {
		return s.RevealedInfo, nil
	}
	info, err := l.oracle.GenerateInfo(ctx, s.Secret)
	if err != nil {
		return "", err
	}
	s.RevealedInfo = info
	if err := l.store.Save(ctx, s); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return info, nil
}
