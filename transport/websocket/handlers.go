package websocket

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/lightsout-backend/internal/entity"
	"github.com/rocketscienceinc/lightsout-backend/transport/rest"
)

var (
	errGameIDRequired = errors.New("game_id is required")
	errCellRequired   = errors.New("row and col are required")
)

func (that *Server) handleNewGame(ctx context.Context, payload *RequestPayload) (*entity.Game, error) {
	return that.games.NewGame(ctx, payload.Config)
}

func (that *Server) handleGetGame(ctx context.Context, payload *RequestPayload) (*entity.Game, error) {
	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	return that.games.GetGame(ctx, payload.GameID)
}

func (that *Server) handleFlip(ctx context.Context, payload *RequestPayload) (*entity.Game, error) {
	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	if payload.Row == nil || payload.Col == nil {
		return nil, errCellRequired
	}

	return that.games.Flip(ctx, payload.GameID, *payload.Row, *payload.Col)
}

func (that *Server) handleLeave(ctx context.Context, payload *RequestPayload) (*entity.Game, error) {
	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	return nil, that.games.DeleteGame(ctx, payload.GameID)
}

func responsePayload(game *entity.Game, errText string) ResponsePayload {
	payload := ResponsePayload{Error: errText}
	if game != nil {
		resp := rest.NewGameResponse(game)
		payload.Game = &resp
	}

	return payload
}
