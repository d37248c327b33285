package game

import "errors"

// Domain errors. Handlers map these to HTTP status codes with errors.Is;
// every rejection leaves the session untouched so callers may retry.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrDuplicateGuess   = errors.New("guess already submitted")
	ErrSessionTerminal  = errors.New("game is already over")
	ErrClueLimitReached = errors.New("clue limit reached")
	ErrGameNotOver      = errors.New("game is not over yet")
	ErrNotFound         = errors.New("game session not found")
	ErrOracle           = errors.New("ai generation failed")
)
