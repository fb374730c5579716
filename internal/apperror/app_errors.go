package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell")
	ErrInvalidBid       = errors.New("invalid bid")
	ErrUnknownAnimal    = errors.New("unknown animal")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrTooManyAttempts  = errors.New("too many invalid inputs")
)
