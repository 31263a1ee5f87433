package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// Then: it should be finished and not ongoing
		assert.True(t, game.IsFinished())
		assert.False(t, game.IsOngoing())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// Then: it should be ongoing
		assert.True(t, game.IsOngoing())
		assert.False(t, game.IsFinished())
	})
}

func TestNewGameView(t *testing.T) {
	t.Run("Flattens the board in row-major order", func(t *testing.T) {
		// Given: a board in progress
		b, err := board.Parse("X...O...X")
		require.NoError(t, err)

		// When: building the view
		game := NewGameView(&b, board.PlayerO, board.PlayerX)

		// Then: cells, turn and status are reported
		expected := &Game{
			Board:  [9]string{PlayerX, EmptyCell, EmptyCell, EmptyCell, PlayerO, EmptyCell, EmptyCell, EmptyCell, PlayerX},
			Winner: "",
			Status: StatusOngoing,
			Turn:   PlayerO,
			Human:  PlayerX,
		}
		assert.Equal(t, expected, game)
	})

	t.Run("Reports the winner", func(t *testing.T) {
		// Given: a board where O owns the anti diagonal
		b, err := board.Parse("XXOXO.O..")
		require.NoError(t, err)

		// When: building the view
		game := NewGameView(&b, board.PlayerX, board.PlayerX)

		// Then: the game is finished with O as the winner and no turn
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerO, game.Winner)
		assert.Equal(t, EmptyCell, game.Turn)
	})

	t.Run("Reports a tie", func(t *testing.T) {
		b, err := board.Parse("OXOOXXXOX")
		require.NoError(t, err)

		game := NewGameView(&b, board.PlayerO, board.PlayerX)

		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerTie, game.Winner)
	})
}
