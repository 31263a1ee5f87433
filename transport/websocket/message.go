package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	actionNewGame   = "game:new"
	actionGameTurn  = "game:turn"
	actionGameState = "game:state"
	actionError     = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type newGamePayload struct {
	Human string `json:"human"`
}

type turnPayload struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

func (that turnPayload) move() (board.Move, bool) {
	if that.Row == nil || that.Col == nil {
		return board.Move{}, false
	}

	return board.Move{Row: *that.Row, Col: *that.Col}, true
}

type ResponsePayload struct {
	Game  *entity.Game `json:"game,omitempty"`
	Error string       `json:"error,omitempty"`
}
