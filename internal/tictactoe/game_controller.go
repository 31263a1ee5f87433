package tictactoe

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type advisor interface {
	BestMove(ctx context.Context, position *board.Board, side board.Player) (engine.Result, error)
}

// Session drives one game between a human and the engine. It owns its board;
// a session is created per game and thrown away when the game is done.
type Session struct {
	advisor advisor

	board      board.Board
	turn       board.Player
	human      board.Player
	lastEngine *engine.Result
}

func NewSession(human board.Player, advisor advisor) (*Session, error) {
	if !human.Valid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, human)
	}

	return &Session{
		advisor: advisor,
		board:   board.New(),
		turn:    board.PlayerX,
		human:   human,
	}, nil
}

// Start lets the engine open the game when it plays X.
func (that *Session) Start(ctx context.Context) error {
	if that.turn == that.human || that.Outcome().IsTerminal() {
		return nil
	}

	return that.engineTurn(ctx)
}

// MakeTurn applies the human's move and, if the game goes on, the engine's reply.
func (that *Session) MakeTurn(ctx context.Context, move board.Move) error {
	if that.Outcome().IsTerminal() {
		return apperror.ErrGameFinished
	}

	if err := that.validateMove(move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if err := that.board.Place(move, that.human.Mark()); err != nil {
		return fmt.Errorf("failed to place mark: %w", err)
	}

	that.turn = that.human.Opponent()

	if that.Outcome().IsTerminal() {
		return nil
	}

	return that.engineTurn(ctx)
}

// Reset starts a new game on the same session, possibly switching sides.
func (that *Session) Reset(ctx context.Context, human board.Player) error {
	if !human.Valid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, human)
	}

	that.board = board.New()
	that.turn = board.PlayerX
	that.human = human
	that.lastEngine = nil

	return that.Start(ctx)
}

// validateMove - checks if the move is valid.
func (that *Session) validateMove(move board.Move) error {
	if that.turn != that.human {
		return apperror.ErrNotYourTurn
	}

	empty, err := that.board.IsEmpty(move)
	if err != nil {
		return err
	}

	if !empty {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	return nil
}

func (that *Session) engineTurn(ctx context.Context) error {
	side := that.human.Opponent()

	result, err := that.advisor.BestMove(ctx, &that.board, side)
	if err != nil {
		return fmt.Errorf("engine failed to choose a move: %w", err)
	}

	if err = that.board.Place(result.Move, side.Mark()); err != nil {
		return fmt.Errorf("engine failed to make turn: %w", err)
	}

	that.turn = that.human
	that.lastEngine = &result

	return nil
}

func (that *Session) Outcome() board.Outcome {
	return that.board.Outcome()
}

// Board returns a copy of the current position.
func (that *Session) Board() board.Board {
	return that.board
}

func (that *Session) Turn() board.Player {
	return that.turn
}

func (that *Session) Human() board.Player {
	return that.human
}

// LastEngineMove is nil until the engine has played in the current game.
func (that *Session) LastEngineMove() *engine.Result {
	return that.lastEngine
}

func (that *Session) State() *entity.Game {
	game := entity.NewGameView(&that.board, that.turn, that.human)

	if that.lastEngine != nil {
		move, score := that.lastEngine.Move, that.lastEngine.Score
		game.LastMove = &move
		game.Score = &score
	}

	return game
}
