// Package engine picks moves by exhaustive minimax search with alpha-beta pruning.
//
// Scores are absolute: X always maximizes and O always minimizes, whichever side
// asked for the move. Terminal positions score +1, -1 or 0 regardless of the ply
// they are reached at.
package engine

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
)

const (
	ScoreXWins = 1
	ScoreDraw  = 0
	ScoreOWins = -1

	// search bounds, strictly outside the score range
	minBound = -2
	maxBound = 2
)

// Result is the engine's choice for one position.
type Result struct {
	Move  board.Move `json:"move"`
	Score int        `json:"score"`
	Nodes int        `json:"nodes"`
}

type searcher struct {
	board *board.Board
	nodes int
}

// BestMove returns the first move, in row-major order, that secures the best
// guaranteed score for side. The board is left exactly as it was given.
func BestMove(b *board.Board, side board.Player) (Result, error) {
	if !side.Valid() {
		return Result{}, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, side)
	}

	if outcome := b.Outcome(); outcome.IsTerminal() {
		return Result{}, fmt.Errorf("%w: game is over (%s)", apperror.ErrInvalidState, outcome.Status)
	}

	s := &searcher{board: b}
	maximizing := side == board.PlayerX

	var (
		bestMove  board.Move
		bestScore = initialScore(maximizing)
		alpha     = minBound
		beta      = maxBound
	)

	for _, move := range b.EmptyCells() {
		score, err := s.try(move, side, alpha, beta)
		if err != nil {
			return Result{}, err
		}

		if !improves(score, bestScore, maximizing) {
			continue
		}

		bestScore = score
		bestMove = move

		if maximizing {
			alpha = max(alpha, bestScore)
		} else {
			beta = min(beta, bestScore)
		}
	}

	return Result{Move: bestMove, Score: bestScore, Nodes: s.nodes}, nil
}

// Evaluate returns the minimax score of a position with the side to move
// inferred from the mark counts.
func Evaluate(b *board.Board) (int, error) {
	if b.Outcome().IsTerminal() {
		return terminalScore(b), nil
	}

	side, err := b.SideToMove()
	if err != nil {
		return 0, fmt.Errorf("failed to infer side to move: %w", err)
	}

	result, err := BestMove(b, side)
	if err != nil {
		return 0, err
	}

	return result.Score, nil
}

// try plays move for side, scores the resulting position and takes the move back.
func (that *searcher) try(move board.Move, side board.Player, alpha, beta int) (int, error) {
	if err := that.board.Place(move, side.Mark()); err != nil {
		return 0, fmt.Errorf("failed to place %s at %s: %w", side, move, err)
	}

	score, err := that.evaluate(side.Opponent() == board.PlayerX, alpha, beta)

	if removeErr := that.board.Remove(move); removeErr != nil && err == nil {
		err = fmt.Errorf("failed to take back %s: %w", move, removeErr)
	}

	return score, err
}

func (that *searcher) evaluate(maximizing bool, alpha, beta int) (int, error) {
	that.nodes++

	if that.board.HasLine(board.MarkX) {
		return ScoreXWins, nil
	}

	if that.board.HasLine(board.MarkO) {
		return ScoreOWins, nil
	}

	if that.board.IsFull() {
		return ScoreDraw, nil
	}

	side := board.PlayerO
	if maximizing {
		side = board.PlayerX
	}

	bestScore := initialScore(maximizing)

	for _, move := range that.board.EmptyCells() {
		score, err := that.try(move, side, alpha, beta)
		if err != nil {
			return 0, err
		}

		if !improves(score, bestScore, maximizing) {
			continue
		}

		bestScore = score

		if maximizing {
			if bestScore >= beta {
				break
			}
			alpha = max(alpha, bestScore)
		} else {
			if bestScore <= alpha {
				break
			}
			beta = min(beta, bestScore)
		}
	}

	return bestScore, nil
}

// improves reports a strict improvement, so ties keep the earlier move.
func improves(score, best int, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}

func initialScore(maximizing bool) int {
	if maximizing {
		return minBound
	}
	return maxBound
}

func terminalScore(b *board.Board) int {
	switch {
	case b.HasLine(board.MarkX):
		return ScoreXWins
	case b.HasLine(board.MarkO):
		return ScoreOWins
	default:
		return ScoreDraw
	}
}
