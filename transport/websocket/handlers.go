package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

// handleNewGame starts a game, or restarts the current one, with the requested human side.
func (that *Server) handleNewGame(ctx context.Context, client *connection, msg *Message) error {
	log := that.logger.With("method", "handleNewGame")

	payloadReq := newGamePayload{Human: string(board.PlayerX)}
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
			return that.sendError(client, "malformed payload")
		}
	}

	human := board.PlayerX
	if payloadReq.Human != "" {
		parsed, err := board.ParsePlayer(payloadReq.Human)
		if err != nil {
			return that.sendError(client, err.Error())
		}
		human = parsed
	}

	if client.session == nil {
		session, err := tictactoe.NewSession(human, that.advisor)
		if err != nil {
			return that.sendError(client, err.Error())
		}

		client.session = session

		if err = session.Start(ctx); err != nil {
			log.Error("engine failed to open the game", "error", err)
			return that.sendError(client, "failed to start the game")
		}
	} else if err := client.session.Reset(ctx, human); err != nil {
		log.Error("failed to reset game", "error", err)
		return that.sendError(client, "failed to start the game")
	}

	log.Info("game started", "human", human)

	return that.sendMessage(client, actionGameState, ResponsePayload{Game: client.session.State()})
}

// handleGameTurn applies the human's move and sends back the position after the engine's reply.
func (that *Server) handleGameTurn(ctx context.Context, client *connection, msg *Message) error {
	log := that.logger.With("method", "handleGameTurn")

	if client.session == nil {
		return that.sendError(client, apperror.ErrGameIsNotStarted.Error())
	}

	var payloadReq turnPayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return that.sendError(client, "malformed payload")
	}

	move, ok := payloadReq.move()
	if !ok {
		return that.sendError(client, "row and col are required")
	}

	if err := client.session.MakeTurn(ctx, move); err != nil {
		if !isCallerError(err) {
			log.Error("failed to make turn", "error", err)
		}

		return that.sendError(client, err.Error())
	}

	game := client.session.State()
	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
	}

	return that.sendMessage(client, actionGameState, ResponsePayload{Game: game})
}

func isCallerError(err error) bool {
	return errors.Is(err, apperror.ErrInvalidCoordinate) ||
		errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrNotYourTurn) ||
		errors.Is(err, apperror.ErrGameFinished)
}
