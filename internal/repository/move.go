package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
)

var ErrMoveNotFound = errors.New("move not found")

type MoveRepository interface {
	Save(ctx context.Context, side board.Player, position *board.Board, result engine.Result) error
	GetByPosition(ctx context.Context, side board.Player, position *board.Board) (engine.Result, error)
	DeleteByPosition(ctx context.Context, side board.Player, position *board.Board) error
}

type dbMove struct {
	client *redis.Client
	ttl    time.Duration
}

type storedMove struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Score int `json:"score"`
}

// NewMoveRepository stores search results under move:<side>:<board>. A zero ttl keeps them forever.
func NewMoveRepository(client *redis.Client, ttl time.Duration) MoveRepository {
	return &dbMove{
		client: client,
		ttl:    ttl,
	}
}

func moveKey(side board.Player, position *board.Board) string {
	return "move:" + string(side) + ":" + position.String()
}

func (that *dbMove) Save(ctx context.Context, side board.Player, position *board.Board, result engine.Result) error {
	moveJSON, err := json.Marshal(storedMove{
		Row:   result.Move.Row,
		Col:   result.Move.Col,
		Score: result.Score,
	})
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	if err = that.client.Set(ctx, moveKey(side, position), moveJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

func (that *dbMove) GetByPosition(ctx context.Context, side board.Player, position *board.Board) (engine.Result, error) {
	response, err := that.client.Get(ctx, moveKey(side, position)).Result()

	if errors.Is(err, redis.Nil) {
		return engine.Result{}, ErrMoveNotFound
	}

	if err != nil {
		return engine.Result{}, fmt.Errorf("failed to get move by position: %w", err)
	}

	var existingMove storedMove
	if err = json.Unmarshal([]byte(response), &existingMove); err != nil {
		return engine.Result{}, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	return engine.Result{
		Move:  board.Move{Row: existingMove.Row, Col: existingMove.Col},
		Score: existingMove.Score,
	}, nil
}

func (that *dbMove) DeleteByPosition(ctx context.Context, side board.Player, position *board.Board) error {
	deleted, err := that.client.Del(ctx, moveKey(side, position)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete move by position: %w", err)
	}

	if deleted == 0 {
		return ErrMoveNotFound
	}

	return nil
}
