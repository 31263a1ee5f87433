package apperror

import "errors"

var (
	ErrInvalidCoordinate = errors.New("coordinate is out of the board")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidState      = errors.New("no legal move in this position")
	ErrInvalidMark       = errors.New("invalid mark")
	ErrInvalidPlayer     = errors.New("invalid player")
	ErrInvalidBoard      = errors.New("invalid board")
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameIsNotStarted  = errors.New("game is not started")
	ErrNotYourTurn       = errors.New("it's not your turn")
)
