package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/lightsout-backend/internal/apperror"
	"github.com/rocketscienceinc/lightsout-backend/internal/entity"
	"github.com/rocketscienceinc/lightsout-backend/internal/lightsout"
)

type flipRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type GameResponse struct {
	ID     string          `json:"id"`
	Rows   int             `json:"rows"`
	Cols   int             `json:"cols"`
	Board  lightsout.Board `json:"board"`
	Status string          `json:"status"`
	Won    bool            `json:"won"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewGameResponse(game *entity.Game) GameResponse {
	return GameResponse{
		ID:     game.ID,
		Rows:   game.Board.Rows(),
		Cols:   game.Board.Cols(),
		Board:  game.Board,
		Status: game.Status,
		Won:    game.IsWon(),
	}
}

func (that *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	if err := that.storage.Ping(r.Context()); err != nil {
		that.logger.Error("storage ping failed", "error", err)
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write ping response", "error", err)
	}
}

func (that *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	// fields left out of the body take the server defaults
	var req lightsout.Overrides
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	game, err := that.games.NewGame(r.Context(), req)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, NewGameResponse(game))
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, NewGameResponse(game))
}

func (that *Server) handleFlip(w http.ResponseWriter, r *http.Request) {
	var req flipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Row == nil || req.Col == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "row and col are required"})
		return
	}

	game, err := that.games.Flip(r.Context(), chi.URLParam(r, "id"), *req.Row, *req.Col)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, NewGameResponse(game))
}

func (that *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrGameFinished):
		status = http.StatusConflict
	case errors.Is(err, apperror.ErrInvalidCell):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, lightsout.ErrInvalidDimensions), errors.Is(err, lightsout.ErrInvalidChance),
		errors.Is(err, apperror.ErrBoardTooBig):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
		that.writeJSON(w, status, errorResponse{Error: http.StatusText(status)})
		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
