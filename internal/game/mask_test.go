package game

import "testing"

func TestRenderMaskFullyHidden(t *testing.T) {
	if got := RenderMask("node", nil); got != "_ _ _ _" {
		t.Fatalf("expected %q, got %q", "_ _ _ _", got)
	}
}

func TestRenderMaskRevealsGuessedLetters(t *testing.T) {
	if got := RenderMask("node", []string{"n"}); got != "N _ _ _" {
		t.Fatalf("expected %q, got %q", "N _ _ _", got)
	}
	// Adjacent revealed letters join without a separator.
	if got := RenderMask("node", []string{"n", "o"}); got != "NO _ _" {
		t.Fatalf("expected %q, got %q", "NO _ _", got)
	}
}

func TestRenderMaskFullyRevealedPhrase(t *testing.T) {
	guesses := []string{"o", "p", "e", "n", "s", "u", "r", "c"}
	if got := RenderMask("open source", guesses); got != "OPEN SOURCE" {
		t.Fatalf("expected %q, got %q", "OPEN SOURCE", got)
	}
}

func TestRenderMaskSpacesAlwaysVisible(t *testing.T) {
	got := RenderMask("a b", nil)
	if got != "_   _" {
		t.Fatalf("expected %q, got %q", "_   _", got)
	}
}

func TestRenderMaskOrderIndependent(t *testing.T) {
	perms := [][]string{
		{"n", "o", "d"},
		{"d", "n", "o"},
		{"o", "d", "n"},
	}
	want := RenderMask("node", perms[0])
	for _, p := range perms[1:] {
		if got := RenderMask("node", p); got != want {
			t.Fatalf("rendering depends on guess order: %q vs %q", got, want)
		}
	}
}

func TestRenderMaskIgnoresPhraseTokens(t *testing.T) {
	// Only single-character tokens reveal letters.
	if got := RenderMask("node", []string{"node"}); got != "_ _ _ _" {
		t.Fatalf("phrase token should not reveal letters, got %q", got)
	}
}

func TestRenderMaskRepeatedLetters(t *testing.T) {
	if got := RenderMask("coffee", []string{"f", "e"}); got != "_ _ FFEE" {
		t.Fatalf("expected %q, got %q", "_ _ FFEE", got)
	}
}
