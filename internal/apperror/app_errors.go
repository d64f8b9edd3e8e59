package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrUnknownPlayerKind = errors.New("unknown player kind")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidRounds     = errors.New("rounds must be at least 1")
)
