package entity

import (
	"fmt"

	"github.com/rocketscienceinc/lightsout-backend/internal/apperror"
	"github.com/rocketscienceinc/lightsout-backend/internal/lightsout"
)

const (
	StatusPlaying = "playing"
	StatusWon     = "won"
)

// Game is one Lights Out session.
type Game struct {
	ID     string           `json:"id"`
	Config lightsout.Config `json:"config"`
	Board  lightsout.Board  `json:"board"`
	Status string           `json:"status"`
}

func NewGame(id string, conf lightsout.Config, board lightsout.Board) *Game {
	game := &Game{
		ID:     id,
		Config: conf,
		Board:  board,
	}
	game.UpdateGameState()

	return game
}

func (that *Game) UpdateGameState() {
	if that.Board.IsWon() {
		that.Status = StatusWon
		return
	}

	that.Status = StatusPlaying
}

// Flip applies one move. The board is replaced, never modified in place.
func (that *Game) Flip(row, col int) error {
	if err := that.ConfirmPlaying(); err != nil {
		return err
	}

	if !that.Board.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d", apperror.ErrInvalidCell, row, col, that.Board.Rows(), that.Board.Cols())
	}

	that.Board = that.Board.Flip(row, col)
	that.UpdateGameState()

	return nil
}

func (that *Game) IsWon() bool {
	return that.Status == StatusWon
}

func (that *Game) IsPlaying() bool {
	return that.Status == StatusPlaying
}

func (that *Game) ConfirmPlaying() error {
	switch that.Status {
	case StatusPlaying:
		return nil
	case StatusWon:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("unknown game status: %s", that.Status)
	}
}
