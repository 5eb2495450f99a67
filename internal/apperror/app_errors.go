package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrGameNotFound     = errors.New("game not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrNoActiveGame     = errors.New("no active game")
)
