package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
)

func mustParse(t *testing.T, s string) board.Board {
	t.Helper()

	b, err := board.Parse(s)
	require.NoError(t, err)

	return b
}

func TestMoveRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	moveRepo := NewMoveRepository(st.Storage, 0)

	// Given: a position and the engine's answer for it
	position := mustParse(t, "XX.OO....")
	result := engine.Result{Move: board.Move{Row: 0, Col: 2}, Score: engine.ScoreXWins, Nodes: 7}

	// When: Save is called
	err := moveRepo.Save(ctx, board.PlayerX, &position, result)

	// Then: no error should be returned, and the move is stored under its key
	require.NoError(t, err)

	stored, err := st.Storage.Get(ctx, "move:X:XX.OO....").Result()
	require.NoError(t, err)
	assert.JSONEq(t, `{"row":0,"col":2,"score":1}`, stored)
}

func TestMoveRepository_GetByPosition(t *testing.T) {
	t.Run("GetByPosition_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveRepo := NewMoveRepository(st.Storage, time.Minute)

		// Given: a stored move
		position := mustParse(t, "XX..O....")
		result := engine.Result{Move: board.Move{Row: 0, Col: 2}, Score: engine.ScoreDraw, Nodes: 42}
		require.NoError(t, moveRepo.Save(ctx, board.PlayerO, &position, result))

		// When: GetByPosition is called for the same side and position
		retrieved, err := moveRepo.GetByPosition(ctx, board.PlayerO, &position)

		// Then: move and score match, node counts are not stored
		require.NoError(t, err)
		assert.Equal(t, result.Move, retrieved.Move)
		assert.Equal(t, result.Score, retrieved.Score)
		assert.Zero(t, retrieved.Nodes)

		// Then: the entry expires
		ttl, err := st.Storage.TTL(ctx, "move:O:XX..O....").Result()
		require.NoError(t, err)
		assert.Positive(t, ttl)
	})

	t.Run("GetByPosition_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveRepo := NewMoveRepository(st.Storage, 0)

		// Given: a move stored for X only
		position := mustParse(t, "XX.OO....")
		require.NoError(t, moveRepo.Save(ctx, board.PlayerX, &position, engine.Result{Move: board.Move{Row: 0, Col: 2}, Score: 1}))

		// When: GetByPosition is called for O
		_, err := moveRepo.GetByPosition(ctx, board.PlayerO, &position)

		// Then: an ErrMoveNotFound error should be returned
		require.ErrorIs(t, err, ErrMoveNotFound)
	})

	t.Run("GetByPosition_Corrupted", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveRepo := NewMoveRepository(st.Storage, 0)

		position := board.New()
		require.NoError(t, st.Storage.Set(ctx, "move:X:.........", "not json", 0).Err())

		_, err := moveRepo.GetByPosition(ctx, board.PlayerX, &position)

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrMoveNotFound)
	})
}

func TestMoveRepository_DeleteByPosition(t *testing.T) {
	t.Run("DeleteByPosition_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveRepo := NewMoveRepository(st.Storage, 0)

		// Given: a stored move
		position := board.New()
		require.NoError(t, moveRepo.Save(ctx, board.PlayerX, &position, engine.Result{}))

		// When: DeleteByPosition is called
		err := moveRepo.DeleteByPosition(ctx, board.PlayerX, &position)

		// Then: the move is gone
		require.NoError(t, err)

		_, err = moveRepo.GetByPosition(ctx, board.PlayerX, &position)
		require.ErrorIs(t, err, ErrMoveNotFound)
	})

	t.Run("DeleteByPosition_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveRepo := NewMoveRepository(st.Storage, 0)

		position := board.New()

		// When: DeleteByPosition is called for a position never stored
		err := moveRepo.DeleteByPosition(ctx, board.PlayerX, &position)

		// Then: an ErrMoveNotFound error should be returned
		require.ErrorIs(t, err, ErrMoveNotFound)
	})
}
