package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

type advisor interface {
	BestMove(ctx context.Context, position *board.Board, side board.Player) (engine.Result, error)
	Analyze(ctx context.Context, position *board.Board) (*usecase.Analysis, error)
}

type Handlers struct {
	advisor advisor
}

func NewHandlers(advisor advisor) *Handlers {
	return &Handlers{
		advisor: advisor,
	}
}

type bestMoveRequest struct {
	Board  string `json:"board" binding:"required"`
	Player string `json:"player"`
}

type bestMoveResponse struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Score  int    `json:"score"`
	Player string `json:"player"`
}

type outcomeResponse struct {
	Status   string      `json:"status"`
	Winner   string      `json:"winner,omitempty"`
	Score    int         `json:"score"`
	Turn     string      `json:"player_turn,omitempty"`
	BestMove *board.Move `json:"best_move,omitempty"`
}

func (that *Handlers) Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

// BestMove - answers with the engine's move for the posted position.
func (that *Handlers) BestMove(c *gin.Context) {
	var req bestMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "board is required"})
		return
	}

	position, err := board.Parse(req.Board)
	if err != nil {
		abortWithError(c, err)
		return
	}

	side, err := resolveSide(&position, req.Player)
	if err != nil {
		abortWithError(c, err)
		return
	}

	result, err := that.advisor.BestMove(c.Request.Context(), &position, side)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, bestMoveResponse{
		Row:    result.Move.Row,
		Col:    result.Move.Col,
		Score:  result.Score,
		Player: string(side),
	})
}

// Outcome - reports the status and minimax score of the position in the board query parameter.
func (that *Handlers) Outcome(c *gin.Context) {
	position, err := board.Parse(c.Query("board"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	analysis, err := that.advisor.Analyze(c.Request.Context(), &position)
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp := outcomeResponse{
		Status: string(analysis.Outcome.Status),
		Winner: string(analysis.Outcome.Winner),
		Score:  analysis.Score,
		Turn:   string(analysis.Side),
	}

	if analysis.BestMove != nil {
		resp.BestMove = &analysis.BestMove.Move
	}

	c.JSON(http.StatusOK, resp)
}

func resolveSide(position *board.Board, player string) (board.Player, error) {
	if player == "" {
		return position.SideToMove()
	}

	return board.ParsePlayer(player)
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(errorStatus(err), gin.H{"error": err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidBoard),
		errors.Is(err, apperror.ErrInvalidPlayer),
		errors.Is(err, apperror.ErrInvalidCoordinate):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrInvalidState):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
