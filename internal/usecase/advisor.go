package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
)

type moveRepo interface {
	Save(ctx context.Context, side board.Player, position *board.Board, result engine.Result) error
	GetByPosition(ctx context.Context, side board.Player, position *board.Board) (engine.Result, error)
	DeleteByPosition(ctx context.Context, side board.Player, position *board.Board) error
}

// Analysis describes a position: its outcome, its minimax score and, while the
// game is in progress, the move the engine would play.
type Analysis struct {
	Outcome  board.Outcome
	Score    int
	Side     board.Player
	BestMove *engine.Result
}

// Advisor answers move requests with the search engine, remembering answers in
// the move cache when one is configured.
type Advisor struct {
	logger   *slog.Logger
	moveRepo moveRepo
}

// NewAdvisor builds an advisor. moveRepo may be nil, in which case every request is searched.
func NewAdvisor(logger *slog.Logger, moveRepo moveRepo) *Advisor {
	return &Advisor{
		logger:   logger.With("component", "advisor"),
		moveRepo: moveRepo,
	}
}

func (that *Advisor) BestMove(ctx context.Context, position *board.Board, side board.Player) (engine.Result, error) {
	log := that.logger.With("method", "BestMove", "board", position.String(), "side", side)

	if !side.Valid() {
		return engine.Result{}, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, side)
	}

	if position.Outcome().IsTerminal() {
		return engine.Result{}, fmt.Errorf("%w: game is over", apperror.ErrInvalidState)
	}

	if result, ok := that.cachedMove(ctx, log, position, side); ok {
		log.Debug("move served from cache", "move", result.Move, "score", result.Score)
		return result, nil
	}

	result, err := engine.BestMove(position, side)
	if err != nil {
		return engine.Result{}, fmt.Errorf("failed to search best move: %w", err)
	}

	log.Debug("move found", "move", result.Move, "score", result.Score, "nodes", result.Nodes)

	if that.moveRepo != nil {
		if err = that.moveRepo.Save(ctx, side, position, result); err != nil {
			log.Error("failed to cache move", "error", err)
		}
	}

	return result, nil
}

// Analyze reports the outcome and score of a position, inferring the side to move.
func (that *Advisor) Analyze(ctx context.Context, position *board.Board) (*Analysis, error) {
	analysis := &Analysis{Outcome: position.Outcome()}

	if analysis.Outcome.IsTerminal() {
		score, err := engine.Evaluate(position)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate position: %w", err)
		}

		analysis.Score = score

		return analysis, nil
	}

	side, err := position.SideToMove()
	if err != nil {
		return nil, fmt.Errorf("failed to infer side to move: %w", err)
	}

	result, err := that.BestMove(ctx, position, side)
	if err != nil {
		return nil, err
	}

	analysis.Side = side
	analysis.Score = result.Score
	analysis.BestMove = &result

	return analysis, nil
}

// cachedMove treats any cache failure as a miss. Entries pointing at an occupied
// cell are dropped.
func (that *Advisor) cachedMove(ctx context.Context, log *slog.Logger, position *board.Board, side board.Player) (engine.Result, bool) {
	if that.moveRepo == nil {
		return engine.Result{}, false
	}

	result, err := that.moveRepo.GetByPosition(ctx, side, position)
	if errors.Is(err, repository.ErrMoveNotFound) {
		return engine.Result{}, false
	}

	if err != nil {
		log.Error("failed to read move cache", "error", err)
		return engine.Result{}, false
	}

	if empty, err := position.IsEmpty(result.Move); err != nil || !empty {
		log.Warn("cached move is not playable, dropping it", "move", result.Move)

		if err = that.moveRepo.DeleteByPosition(ctx, side, position); err != nil {
			log.Error("failed to drop cached move", "error", err)
		}

		return engine.Result{}, false
	}

	return result, true
}
