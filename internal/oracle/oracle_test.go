package oracle

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/wordguess/go-server/internal/game"
)

// fakeProvider records the last prompt and returns a canned response.
type fakeProvider struct {
	response string
	err      error
	prompt   string
	model    string
}

func (f *fakeProvider) Complete(ctx context.Context, model string, prompt string) (string, error) {
	f.model = model
	f.prompt = prompt
	return f.response, f.err
}

func TestGenerateWordNormalizes(t *testing.T) {
	p := &fakeProvider{response: "  Banana \n"}
	g := New(p, "test-model")
	word, err := g.GenerateWord(context.Background(), game.CategoryAnimals, game.DifficultyEasy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if word != "banana" {
		t.Fatalf("expected %q, got %q", "banana", word)
	}
	if p.model != "test-model" {
		t.Fatalf("model not passed through, got %q", p.model)
	}
	if !strings.Contains(p.prompt, `"animals"`) || !strings.Contains(p.prompt, `"easy"`) {
		t.Fatalf("prompt missing category/difficulty:\n%s", p.prompt)
	}
}

func TestGenerateWordTooShort(t *testing.T) {
	g := New(&fakeProvider{response: "ab"}, "m")
	if _, err := g.GenerateWord(context.Background(), game.CategoryTech, game.DifficultyHard); !errors.Is(err, game.ErrOracle) {
		t.Fatalf("expected ErrOracle, got %v", err)
	}
}

func TestGenerateWordProviderFailure(t *testing.T) {
	g := New(&fakeProvider{err: errors.New("boom")}, "m")
	if _, err := g.GenerateWord(context.Background(), game.CategoryTech, game.DifficultyEasy); !errors.Is(err, game.ErrOracle) {
		t.Fatalf("expected ErrOracle, got %v", err)
	}
}

func TestGenerateClueContext(t *testing.T) {
	p := &fakeProvider{response: "It runs on servers."}
	g := New(p, "m")
	clue, err := g.GenerateClue(context.Background(), game.ClueContext{
		Secret:     "node",
		Display:    "N _ _ _",
		Clues:      []string{"It is tech related."},
		Guesses:    []string{"n", "z"},
		WrongCount: 1,
		MaxWrong:   8,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clue != "It runs on servers." {
		t.Fatalf("unexpected clue %q", clue)
	}
	for _, want := range []string{
		"N _ _ _",
		"It is tech related.",
		"Clue #2",
		"Attempts Left: 7 out of 8",
		"Correct Guesses So Far: n",
		"Incorrect Guesses So Far: z",
	} {
		if !strings.Contains(p.prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, p.prompt)
		}
	}
}

func TestGenerateClueEmptyResponse(t *testing.T) {
	g := New(&fakeProvider{response: "   "}, "m")
	_, err := g.GenerateClue(context.Background(), game.ClueContext{Secret: "node", MaxWrong: 8})
	if !errors.Is(err, game.ErrOracle) {
		t.Fatalf("expected ErrOracle, got %v", err)
	}
}

func TestGenerateInfo(t *testing.T) {
	p := &fakeProvider{response: "Node.js appeared in 2009."}
	g := New(p, "m")
	info, err := g.GenerateInfo(context.Background(), "node")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info != "Node.js appeared in 2009." {
		t.Fatalf("unexpected info %q", info)
	}
	if !strings.Contains(p.prompt, `"node"`) {
		t.Fatalf("prompt missing word:\n%s", p.prompt)
	}
}

func TestGenerateInfoEmptyResponse(t *testing.T) {
	g := New(&fakeProvider{response: ""}, "m")
	if _, err := g.GenerateInfo(context.Background(), "node"); !errors.Is(err, game.ErrOracle) {
		t.Fatalf("expected ErrOracle, got %v", err)
	}
}
