package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/lightsout-backend/internal/apperror"
	"github.com/rocketscienceinc/lightsout-backend/internal/entity"
	"github.com/rocketscienceinc/lightsout-backend/internal/lightsout"
	"github.com/rocketscienceinc/lightsout-backend/internal/pkg"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// Settings - how new boards are generated.
type Settings struct {
	// Defaults is used when a client does not send its own board config.
	Defaults lightsout.Config
	// Solvable switches to the shuffle generator, which applies ShuffleFlips
	// random flips to a cleared board.
	Solvable     bool
	ShuffleFlips int
	// MaxRows and MaxCols cap client boards; zero means lightsout.DefaultMaxRows/DefaultMaxCols.
	MaxRows int
	MaxCols int
	// Source defaults to a time-seeded generator.
	Source lightsout.Source
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	settings Settings

	// guards settings.Source, which is not safe for concurrent use
	srcMu sync.Mutex
	// serialises load-flip-store so concurrent flips are not lost
	flipMu sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, settings Settings) *GameManager {
	if settings.Source == nil {
		settings.Source = lightsout.NewRand(time.Now().UnixNano())
	}
	if settings.MaxRows <= 0 {
		settings.MaxRows = lightsout.DefaultMaxRows
	}
	if settings.MaxCols <= 0 {
		settings.MaxCols = lightsout.DefaultMaxCols
	}

	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		settings: settings,
	}
}

// NewGame - creates and stores a new game. Fields missing from overrides
// come from the configured defaults.
func (that *GameManager) NewGame(ctx context.Context, overrides lightsout.Overrides) (*entity.Game, error) {
	log := that.logger.With("method", "NewGame")

	gameConf := overrides.Apply(that.settings.Defaults)
	if err := gameConf.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	if gameConf.Rows > that.settings.MaxRows || gameConf.Cols > that.settings.MaxCols {
		return nil, fmt.Errorf("%w: %dx%d, limit %dx%d", apperror.ErrBoardTooBig,
			gameConf.Rows, gameConf.Cols, that.settings.MaxRows, that.settings.MaxCols)
	}

	board, err := that.generateBoard(gameConf)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	game := entity.NewGame(pkg.GenerateGameID(), gameConf, board)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Debug("game created", "gameID", game.ID, "rows", gameConf.Rows, "cols", gameConf.Cols, "status", game.Status)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// Flip - applies one move to a stored game and saves the result.
// Flipping a won game returns the game together with apperror.ErrGameFinished.
func (that *GameManager) Flip(ctx context.Context, id string, row, col int) (*entity.Game, error) {
	log := that.logger.With("method", "Flip")

	that.flipMu.Lock()
	defer that.flipMu.Unlock()

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if err = game.Flip(row, col); err != nil {
		if errors.Is(err, apperror.ErrGameFinished) {
			return game, apperror.ErrGameFinished
		}

		return nil, fmt.Errorf("failed to flip: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsWon() {
		log.Info("game won", "gameID", game.ID)
	}

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Debug("game deleted", "gameID", id)

	return nil
}

func (that *GameManager) generateBoard(conf lightsout.Config) (lightsout.Board, error) {
	that.srcMu.Lock()
	defer that.srcMu.Unlock()

	if that.settings.Solvable {
		return lightsout.NewSolvable(conf, that.settings.ShuffleFlips, that.settings.Source)
	}

	return lightsout.New(conf, that.settings.Source)
}
