// internal/game/engine.go
//
// Guess transition for a single session.
// Responsibilities:
//   - Validate a raw guess (non-empty, not a duplicate, session live).
//   - Apply it: letter guesses reveal or cost a wrong count, phrase
//     guesses win outright or cost a wrong count.
//   - Evaluate terminal conditions after every guess.
//
// Win and loss are checked after every guess, not only on letter
// guesses: a wrong phrase attempt can push WrongCount over the limit,
// and a correct letter can complete the mask, so both checks must be
// reachable from both guess shapes.

package game

import (
	"fmt"
	"strings"
	"time"
)

// Result is the outcome of applying one guess.
type Result struct {
	Session *Session
	Correct bool
	Message string
}

// ApplyGuess validates and applies one guess, mutating the session.
// Rejections happen before any mutation, so a failed call leaves the
// session exactly as it was.
func (s *Session) ApplyGuess(token string, now time.Time) (*Result, error) {
	if s.Status.Terminal() {
		return nil, ErrSessionTerminal
	}
	token = Normalize(token)
	if token == "" {
		return nil, fmt.Errorf("%w: empty guess", ErrInvalidInput)
	}
	if s.hasGuessed(token) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateGuess, token)
	}

	s.Guesses = append(s.Guesses, token)
	res := &Result{Session: s}

	if len([]rune(token)) == 1 {
		if strings.Contains(s.Secret, token) {
			res.Correct = true
			res.Message = fmt.Sprintf("Correct! '%s' is in the word/phrase.", strings.ToUpper(token))
		} else {
			s.WrongCount++
			res.Message = fmt.Sprintf("Incorrect. '%s' is not in the word/phrase.", strings.ToUpper(token))
		}
	} else {
		if token == s.Secret {
			res.Correct = true
			s.revealAllLetters()
			s.finish(StatusWon, now)
			res.Message = fmt.Sprintf("Amazing! You guessed it: %s", s.Secret)
		} else {
			// A wrong full guess costs exactly one wrong count, same
			// as a wrong letter.
			s.WrongCount++
			res.Message = fmt.Sprintf("Incorrect. '%s' is not the right word/phrase.", token)
		}
	}

	if !s.Status.Terminal() {
		if maskComplete(s.Secret, s.Guesses) {
			s.finish(StatusWon, now)
			res.Message = fmt.Sprintf("Congratulations! You revealed: %s", s.Secret)
		} else if s.WrongCount >= s.Limits.MaxWrong {
			s.finish(StatusLost, now)
			res.Message = fmt.Sprintf("Game Over! Too many incorrect guesses. The word/phrase was: %s", s.Secret)
		}
	}
	return res, nil
}

// revealAllLetters unions every distinct non-space character of the
// secret into the guess list, so the mask renders fully revealed after a
// winning phrase guess.
func (s *Session) revealAllLetters() {
	for _, r := range s.Secret {
		if r == ' ' {
			continue
		}
		l := string(r)
		if !s.hasGuessed(l) {
			s.Guesses = append(s.Guesses, l)
		}
	}
}

// finish moves the session into a terminal state. EndedAt is set exactly
// once, here, atomically with the status change.
func (s *Session) finish(st Status, now time.Time) {
	s.Status = st
	s.EndedAt = now
}
