package othello

import "errors"

// Errors returned by the engine. Callers should match them with errors.Is.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrOutOfBounds          = errors.New("out of bounds")
	ErrIllegalMove          = errors.New("illegal move")
	ErrGameOver             = errors.New("game over")
)
