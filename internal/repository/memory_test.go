package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/lightsout-backend/internal/apperror"
)

func TestMemoryGameRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Saved game can be read back", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository(0)
		game := newTestGame("1")

		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		retrievedGame, err := gameRepo.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("Stored game is isolated from caller changes", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository(0)
		game := newTestGame("1")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the caller mutates its copy after saving
		game.Board[0][0] = false

		// Then: the stored board keeps its value
		retrievedGame, err := gameRepo.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.True(t, retrievedGame.Board[0][0])
	})

	t.Run("Missing game", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository(0)

		_, err := gameRepo.GetByID(ctx, "nope")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)

		err = gameRepo.DeleteByID(ctx, "nope")
		assert.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Delete removes the game", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository(0)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newTestGame("1")))

		require.NoError(t, gameRepo.DeleteByID(ctx, "1"))

		_, err := gameRepo.GetByID(ctx, "1")
		assert.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Concurrent access", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository(0)

		var wg sync.WaitGroup
		for i := range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				game := newTestGame(string(rune('a' + i)))
				assert.NoError(t, gameRepo.CreateOrUpdate(ctx, game))
				_, err := gameRepo.GetByID(ctx, game.ID)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.NoError(t, gameRepo.Ping(ctx))
	})

	t.Run("Games expire after the TTL", func(t *testing.T) {
		// Given: a store with a one hour TTL and a controllable clock
		now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		gameRepo := newMemoryGameRepository(time.Hour, func() time.Time { return now })
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newTestGame("1")))

		// When: just under an hour passes
		now = now.Add(59 * time.Minute)

		// Then: the game is still there
		_, err := gameRepo.GetByID(ctx, "1")
		require.NoError(t, err)

		// When: the TTL elapses
		now = now.Add(time.Minute)

		// Then: the game is gone
		_, err = gameRepo.GetByID(ctx, "1")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.ErrorIs(t, gameRepo.DeleteByID(ctx, "1"), apperror.ErrGameNotFound)
	})

	t.Run("Saving refreshes the TTL and sweeps expired games", func(t *testing.T) {
		now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		gameRepo := newMemoryGameRepository(time.Hour, func() time.Time { return now })
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newTestGame("old")))
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newTestGame("kept")))

		// When: "kept" is saved again half way through
		now = now.Add(30 * time.Minute)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newTestGame("kept")))

		// And: another save happens after "old" expired
		now = now.Add(45 * time.Minute)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newTestGame("new")))

		// Then: "old" was dropped from memory, "kept" lives on
		assert.NotContains(t, gameRepo.games, "old")
		_, err := gameRepo.GetByID(ctx, "kept")
		assert.NoError(t, err)
	})

	t.Run("Zero TTL keeps games", func(t *testing.T) {
		now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		gameRepo := newMemoryGameRepository(0, func() time.Time { return now })
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newTestGame("1")))

		now = now.Add(24 * 365 * time.Hour)

		_, err := gameRepo.GetByID(ctx, "1")
		assert.NoError(t, err)
	})
}
