package entity

import (
	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// Game is the snapshot of a session sent to clients.
type Game struct {
	Board    [board.Size * board.Size]string `json:"board"`
	Winner   string                          `json:"winner"`
	Status   string                          `json:"status"`
	Turn     string                          `json:"player_turn,omitempty"`
	Human    string                          `json:"human"`
	LastMove *board.Move                     `json:"last_move,omitempty"`
	Score    *int                            `json:"score,omitempty"`
}

// NewGameView flattens a board into the wire format and records the outcome.
func NewGameView(b *board.Board, turn, human board.Player) *Game {
	game := &Game{
		Turn:  string(turn),
		Human: string(human),
	}

	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			game.Board[row*board.Size+col] = string(b[row][col])
		}
	}

	game.UpdateGameState(b.Outcome())

	return game
}

func (that *Game) UpdateGameState(outcome board.Outcome) {
	switch outcome.Status {
	// one player wins
	case board.StatusWin:
		that.Winner = string(outcome.Winner)
		that.Status = StatusFinished
		that.Turn = ""
	// tie
	case board.StatusDraw:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	// game continue
	default:
		that.Winner = ""
		that.Status = StatusOngoing
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}
