package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/lightsout-backend/internal/lightsout"
	"github.com/rocketscienceinc/lightsout-backend/transport/rest"
)

const (
	actionNewGame = "game:new"
	actionGetGame = "game:get"
	actionFlip    = "game:flip"
	actionLeave   = "game:leave"
	actionError   = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	GameID string `json:"game_id,omitempty"`
	// Config fields left out take the server defaults.
	Config lightsout.Overrides `json:"config"`
	Row    *int                `json:"row,omitempty"`
	Col    *int                `json:"col,omitempty"`
}

type ResponsePayload struct {
	Game  *rest.GameResponse `json:"game,omitempty"`
	Error string             `json:"error,omitempty"`
}
