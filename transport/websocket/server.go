package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/server"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const idleTimeout = 5 * time.Minute

var ErrUnknownAction = errors.New("unknown action")

type advisor interface {
	BestMove(ctx context.Context, position *board.Board, side board.Player) (engine.Result, error)
}

// connection holds what one client owns: its socket and its current game.
type connection struct {
	conn    *websocket.Conn
	session *tictactoe.Session
}

type Server struct {
	logger   *slog.Logger
	advisor  advisor
	upgrader websocket.Upgrader

	handlers map[string]func(ctx context.Context, client *connection, message *Message) error
}

func New(logger *slog.Logger, advisor advisor) *Server {
	wsServer := &Server{
		logger:  logger.With("component", "websocket"),
		advisor: advisor,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]func(context.Context, *connection, *Message) error),
	}

	wsServer.handlers[actionNewGame] = wsServer.handleNewGame
	wsServer.handlers[actionGameTurn] = wsServer.handleGameTurn

	return wsServer
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.upgradeToWebSocket)

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	return server.Run(ctx, srv)
}

// upgradeToWebSocket - upgrades the connection and serves it until the client leaves.
func (that *Server) upgradeToWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket", "remote", req.RemoteAddr)

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	log.Info("WebSocket connection established")

	if err = that.handleMessages(req.Context(), &connection{conn: conn}); err != nil {
		log.Info("WebSocket connection closed", "reason", err)
	}
}

// handleMessages - processes messages from the client one at a time.
func (that *Server) handleMessages(ctx context.Context, client *connection) error {
	log := that.logger.With("method", "handleMessages")

	for {
		if err := client.conn.SetReadDeadline(time.Now().Add(idleTimeout)); err != nil {
			return fmt.Errorf("failed to set read deadline: %w", err)
		}

		_, data, err := client.conn.ReadMessage()
		if err != nil {
			return err
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			if err = that.sendError(client, "malformed message"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("error processing message", "error", ErrUnknownAction, "action", message.Action)
			if err = that.sendError(client, fmt.Sprintf("%s: %q", ErrUnknownAction, message.Action)); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, client, &message); err != nil {
			return fmt.Errorf("failed to handle %s: %w", message.Action, err)
		}
	}
}

func (that *Server) sendMessage(client *connection, action string, payload ResponsePayload) error {
	if err := client.conn.WriteJSON(Message{Action: action, Payload: mustMarshal(payload)}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(client *connection, reason string) error {
	return that.sendMessage(client, actionError, ResponsePayload{Error: reason})
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
