// internal/game/mask.go
//
// Pure rendering of the player-visible mask. The mask is re-derived from
// (secret, guesses) after every mutation instead of patched in place, so
// calling it twice with the same inputs always yields the same string.

package game

import (
	"strings"
	"unicode"
)

// RenderMask renders the masked view of secret given the guesses so far.
//
// Rules:
//   - Spaces in the secret are always visible.
//   - A letter is revealed (upper-cased) once it appears in guesses as a
//     single-character token; otherwise it renders as "_".
//   - Cells are separated by a single space unless both neighbours are
//     revealed, so a half-solved "node" reads "N _ _ _" while a fully
//     solved "open source" reads "OPEN SOURCE".
//
// Only single-character tokens reveal letters; phrase guesses contribute
// nothing here (a winning phrase guess unions its letters into the
// guess list before rendering).
func RenderMask(secret string, guesses []string) string {
	revealed := make(map[rune]bool)
	for _, g := range guesses {
		r := []rune(g)
		if len(r) == 1 {
			revealed[r[0]] = true
		}
	}

	var b strings.Builder
	prevShown := false
	for i, r := range []rune(secret) {
		shown := r == ' ' || revealed[r]
		if i > 0 && !(shown && prevShown) {
			b.WriteByte(' ')
		}
		switch {
		case r == ' ':
			b.WriteByte(' ')
		case revealed[r]:
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteByte('_')
		}
		prevShown = shown
	}
	return b.String()
}

// maskComplete reports whether every non-space character of secret is
// covered by a single-character guess.
func maskComplete(secret string, guesses []string) bool {
	revealed := make(map[rune]bool)
	for _, g := range guesses {
		r := []rune(g)
		if len(r) == 1 {
			revealed[r[0]] = true
		}
	}
	for _, r := range secret {
		if r != ' ' && !revealed[r] {
			return false
		}
	}
	return true
}
