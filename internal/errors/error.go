package errors

import "errors"

var (
	ErrInvalidState  = errors.New("side to move does not match the board")
	ErrInvalidMove   = errors.New("move is not legal on the current board")
	ErrNoLegalMove   = errors.New("no legal moves available")
	ErrGameOver      = errors.New("game is already over")
	ErrNotYourTurn   = errors.New("it is not this player's turn")
	ErrBadCoordinate = errors.New("coordinate is outside the board or not a dark square")
	ErrGameNotFound  = errors.New("game not found")
)
