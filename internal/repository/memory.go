package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rocketscienceinc/lightsout-backend/internal/apperror"
	"github.com/rocketscienceinc/lightsout-backend/internal/entity"
)

type memEntry struct {
	game *entity.Game
	// zero when the store has no TTL
	expiresAt time.Time
}

// memGame keeps games in process memory. Like the Redis store, a game expires
// ttl after its last save; a non-positive ttl keeps games until deleted.
type memGame struct {
	mu    sync.RWMutex
	games map[string]memEntry
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryGameRepository(ttl time.Duration) GameRepository {
	return newMemoryGameRepository(ttl, time.Now)
}

func newMemoryGameRepository(ttl time.Duration, now func() time.Time) *memGame {
	return &memGame{
		games: make(map[string]memEntry),
		ttl:   ttl,
		now:   now,
	}
}

func (that *memGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	now := that.now()
	that.dropExpired(now)

	entry := memEntry{game: cloneGame(game)}
	if that.ttl > 0 {
		entry.expiresAt = now.Add(that.ttl)
	}

	that.games[game.ID] = entry

	return nil
}

func (that *memGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	entry, ok := that.games[id]
	if !ok || entry.expired(that.now()) {
		return nil, apperror.ErrGameNotFound
	}

	return cloneGame(entry.game), nil
}

func (that *memGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.games[id]
	if !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.games, id)

	if entry.expired(that.now()) {
		return apperror.ErrGameNotFound
	}

	return nil
}

func (that *memGame) Ping(context.Context) error {
	return nil
}

// caller holds mu for writing
func (that *memGame) dropExpired(now time.Time) {
	if that.ttl <= 0 {
		return
	}

	for id, entry := range that.games {
		if entry.expired(now) {
			delete(that.games, id)
		}
	}
}

func (that memEntry) expired(now time.Time) bool {
	return !that.expiresAt.IsZero() && !now.Before(that.expiresAt)
}

// callers must not share boards with the store
func cloneGame(game *entity.Game) *entity.Game {
	clone := *game
	clone.Board = game.Board.Clone()

	return &clone
}
