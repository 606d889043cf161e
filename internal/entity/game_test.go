package entity

import (
	"testing"

	"github.com/rocketscienceinc/lightsout-backend/internal/apperror"
	"github.com/rocketscienceinc/lightsout-backend/internal/lightsout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("Game with lit cells is playing", func(t *testing.T) {
		// When: a game is created from a board with a lit cell
		game := NewGame("123", lightsout.Config{Rows: 1, Cols: 2}, lightsout.Board{{true, false}})

		// Then: it is playing
		assert.Equal(t, StatusPlaying, game.Status)
		assert.True(t, game.IsPlaying())
	})

	t.Run("Game with a cleared board is won immediately", func(t *testing.T) {
		game := NewGame("123", lightsout.Config{Rows: 2, Cols: 2}, lightsout.Board{{false, false}, {false, false}})

		assert.Equal(t, StatusWon, game.Status)
		assert.True(t, game.IsWon())
	})
}

func TestGame_ConfirmPlaying(t *testing.T) {
	t.Run("Returns nil when game is playing", func(t *testing.T) {
		game := &Game{Status: StatusPlaying}

		assert.NoError(t, game.ConfirmPlaying())
	})

	t.Run("Returns ErrGameFinished when game is won", func(t *testing.T) {
		game := &Game{Status: StatusWon}

		assert.ErrorIs(t, game.ConfirmPlaying(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}

		err := game.ConfirmPlaying()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown game status")
	})
}

func TestGame_Flip(t *testing.T) {
	t.Run("Successful flip", func(t *testing.T) {
		// Given: a 3x3 game with one lit corner
		game := NewGame("123", lightsout.Config{Rows: 3, Cols: 3}, lightsout.Board{
			{true, false, false},
			{false, false, false},
			{false, false, false},
		})
		previous := game.Board

		// When: the centre is flipped
		err := game.Flip(1, 1)
		require.NoError(t, err)

		// Then: the plus shape toggles and the game keeps going
		expectedGame := &Game{
			ID:     "123",
			Config: lightsout.Config{Rows: 3, Cols: 3},
			Board: lightsout.Board{
				{true, true, false},
				{true, true, true},
				{false, true, false},
			},
			Status: StatusPlaying,
		}
		require.Equal(t, expectedGame, game)

		// And: the previous board value is untouched
		assert.False(t, previous.Equal(game.Board))
	})

	t.Run("Winning flip finishes the game", func(t *testing.T) {
		game := NewGame("1", lightsout.Config{Rows: 1, Cols: 1, ChanceLightStartsOn: 1}, lightsout.Board{{true}})

		err := game.Flip(0, 0)

		require.NoError(t, err)
		assert.True(t, game.IsWon())
		assert.Equal(t, lightsout.Board{{false}}, game.Board)
	})

	t.Run("Error on flipping a won game", func(t *testing.T) {
		game := NewGame("1", lightsout.Config{Rows: 1, Cols: 1}, lightsout.Board{{false}})

		err := game.Flip(0, 0)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, lightsout.Board{{false}}, game.Board)
	})

	t.Run("Error on cell outside the board", func(t *testing.T) {
		game := NewGame("1", lightsout.Config{Rows: 2, Cols: 2}, lightsout.Board{{true, false}, {false, false}})

		for _, cell := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
			err := game.Flip(cell[0], cell[1])
			assert.ErrorIs(t, err, apperror.ErrInvalidCell)
		}
		assert.Equal(t, lightsout.Board{{true, false}, {false, false}}, game.Board)
	})
}
