package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	actionConnect     = "connect"
	actionGameNew     = "game:new"
	actionGameState   = "game:state"
	actionGameTurn    = "game:turn"
	actionGameRestart = "game:restart"
	actionGameLeave   = "game:leave"
	actionError       = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Session  *entity.Session `json:"session,omitempty"`
	Game     *entity.Game    `json:"game,omitempty"`
	BotFirst bool            `json:"bot_first,omitempty"`
	Cell     *int            `json:"cell,omitempty"`
	Error    string          `json:"error,omitempty"`
}
