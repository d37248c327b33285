package game

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// fakeStore is a map-backed Store for lifecycle tests.
type fakeStore struct {
	sessions map[string]*Session
	saves    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: make(map[string]*Session)}
}

func (f *fakeStore) Save(ctx context.Context, s *Session) error {
	f.saves++
	f.sessions[s.ID] = s.Clone()
	return nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (*Session, error) {
	if s, ok := f.sessions[id]; ok {
		return s.Clone(), nil
	}
	return nil, ErrNotFound
}

// fakeOracle is a deterministic Oracle with call counters.
type fakeOracle struct {
	word      string
	wordErr   error
	wordCalls int
	clueCalls int
	infoCalls int
}

func (f *fakeOracle) GenerateWord(ctx context.Context, c Category, d Difficulty) (string, error) {
	f.wordCalls++
	if f.wordErr != nil {
		return "", f.wordErr
	}
	return f.word, nil
}

func (f *fakeOracle) GenerateClue(ctx context.Context, c ClueContext) (string, error) {
	f.clueCalls++
	return fmt.Sprintf("clue %d", len(c.Clues)+1), nil
}

func (f *fakeOracle) GenerateInfo(ctx context.Context, word string) (string, error) {
	f.infoCalls++
	return "some trivia about " + word, nil
}

func TestStartBuildsSession(t *testing.T) {
	st := newFakeStore()
	or := &fakeOracle{word: "node"}
	l := NewLifecycle(st, or)

	s, err := l.Start(context.Background(), "user1", "tech", "easy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID == "" || s.OwnerID != "user1" {
		t.Fatalf("bad identity fields: %+v", s)
	}
	if s.Secret != "node" || s.Status != StatusInProgress {
		t.Fatalf("bad initial state: %+v", s)
	}
	if s.Limits != (Limits{MaxWrong: 8, MaxClues: 5}) {
		t.Fatalf("easy limits not applied: %+v", s.Limits)
	}
	if got := s.Display(); got != "_ _ _ _" {
		t.Fatalf("expected fully masked display, got %q", got)
	}
	if _, err := st.Get(context.Background(), s.ID); err != nil {
		t.Fatal("session must be persisted on start")
	}
}

func TestStartValidatesBeforeOracle(t *testing.T) {
	st := newFakeStore()
	or := &fakeOracle{word: "node"}
	l := NewLifecycle(st, or)

	if _, err := l.Start(context.Background(), "user1", "sports", "easy"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := l.Start(context.Background(), "user1", "tech", "brutal"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if or.wordCalls != 0 {
		t.Fatalf("oracle must not be contacted for invalid input, got %d calls", or.wordCalls)
	}
}

func TestStartRejectsUnusableWord(t *testing.T) {
	l := NewLifecycle(newFakeStore(), &fakeOracle{word: " ab "})
	if _, err := l.Start(context.Background(), "user1", "tech", "easy"); !errors.Is(err, ErrOracle) {
		t.Fatalf("expected ErrOracle for a too-short word, got %v", err)
	}
}

func TestStartSurfacesOracleFailure(t *testing.T) {
	or := &fakeOracle{wordErr: fmt.Errorf("%w: upstream down", ErrOracle)}
	l := NewLifecycle(newFakeStore(), or)
	if _, err := l.Start(context.Background(), "user1", "tech", "easy"); !errors.Is(err, ErrOracle) {
		t.Fatalf("expected ErrOracle, got %v", err)
	}
}

func TestGuessPersistsSession(t *testing.T) {
	st := newFakeStore()
	l := NewLifecycle(st, &fakeOracle{word: "node"})
	s, err := l.Start(context.Background(), "user1", "tech", "easy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := l.Guess(context.Background(), s, "n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, err := st.Get(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded.Guesses) != 1 || loaded.Guesses[0] != "n" {
		t.Fatalf("guess not persisted: %v", loaded.Guesses)
	}
}

func TestClueQuota(t *testing.T) {
	st := newFakeStore()
	or := &fakeOracle{word: "quantum"}
	l := NewLifecycle(st, or)
	s, err := l.Start(context.Background(), "user1", "science", "hard") // maxClues=3
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		clue, err := l.RequestClue(context.Background(), s)
		if err != nil {
			t.Fatalf("clue %d: unexpected error: %v", i+1, err)
		}
		if seen[clue] {
			t.Fatalf("clue %q repeated", clue)
		}
		seen[clue] = true
	}
	if len(s.Clues) != 3 {
		t.Fatalf("expected 3 clues, got %d", len(s.Clues))
	}

	if _, err := l.RequestClue(context.Background(), s); !errors.Is(err, ErrClueLimitReached) {
		t.Fatalf("expected ErrClueLimitReached, got %v", err)
	}
	if len(s.Clues) != 3 {
		t.Fatalf("rejected clue request must not change clues, got %d", len(s.Clues))
	}
	if or.clueCalls != 3 {
		t.Fatalf("oracle must not be contacted past the quota, got %d calls", or.clueCalls)
	}
}

func TestClueRejectedOnTerminalSession(t *testing.T) {
	st := newFakeStore()
	or := &fakeOracle{word: "node"}
	l := NewLifecycle(st, or)
	s, _ := l.Start(context.Background(), "user1", "tech", "easy")
	if err := l.Forfeit(context.Background(), s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.RequestClue(context.Background(), s); !errors.Is(err, ErrSessionTerminal) {
		t.Fatalf("expected ErrSessionTerminal, got %v", err)
	}
	if or.clueCalls != 0 {
		t.Fatal("oracle must not be contacted for a finished game")
	}
}

func TestForfeit(t *testing.T) {
	st := newFakeStore()
	l := NewLifecycle(st, &fakeOracle{word: "node"})
	s, _ := l.Start(context.Background(), "user1", "tech", "easy")

	if err := l.Forfeit(context.Background(), s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Status != StatusForfeited || s.EndedAt.IsZero() {
		t.Fatalf("bad forfeit state: %+v", s)
	}

	// Forfeiting twice is an error so callers can detect stale state.
	if err := l.Forfeit(context.Background(), s); !errors.Is(err, ErrSessionTerminal) {
		t.Fatalf("expected ErrSessionTerminal, got %v", err)
	}
}

func TestRevealInfoMemoized(t *testing.T) {
	st := newFakeStore()
	or := &fakeOracle{word: "node"}
	l := NewLifecycle(st, or)
	s, _ := l.Start(context.Background(), "user1", "tech", "easy")

	if _, err := l.RevealInfo(context.Background(), s); !errors.Is(err, ErrGameNotOver) {
		t.Fatalf("expected ErrGameNotOver while in progress, got %v", err)
	}

	if err := l.Forfeit(context.Background(), s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, err := l.RevealInfo(context.Background(), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := l.RevealInfo(context.Background(), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("memoized info differs: %q vs %q", first, second)
	}
	if or.infoCalls != 1 {
		t.Fatalf("oracle must be invoked at most once, got %d calls", or.infoCalls)
	}
}
