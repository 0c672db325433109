package apperror

import "errors"

var (
	ErrNoActiveGame      = errors.New("no active game")
	ErrColorNotPicked    = errors.New("player 1 has not picked a color")
	ErrGameOver          = errors.New("game is already finished")
	ErrPlayerOneNotReady = errors.New("player 1 did not pick color first")
	ErrInvalidColor      = errors.New("player 1 picked an invalid color")
)
