package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrGameNotFound = errors.New("game not found")
	ErrInvalidCell  = errors.New("cell is outside the board")
	ErrBoardTooBig  = errors.New("board exceeds the size limit")
)
