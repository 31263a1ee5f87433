package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewRouter(logger, NewHandlers(usecase.NewAdvisor(logger, nil)))
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandlers_Ping(t *testing.T) {
	// When: pinging the server
	rec := serve(newRouter(t), http.MethodGet, "/ping", "")

	// Then: it answers pong
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestHandlers_BestMove(t *testing.T) {
	router := newRouter(t)

	t.Run("Returns the winning move", func(t *testing.T) {
		// Given: X to move with two in the top row
		body := `{"board":"XX.OO....","player":"X"}`

		// When: posting the position
		rec := serve(router, http.MethodPost, "/api/v1/best-move", body)

		// Then: the engine completes the row
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"row":0,"col":2,"score":1,"player":"X"}`, rec.Body.String())
	})

	t.Run("Infers the side to move", func(t *testing.T) {
		// Given: a position where O is to move and must block
		body := `{"board":"XX..O...."}`

		// When: posting it without a player
		rec := serve(router, http.MethodPost, "/api/v1/best-move", body)

		// Then: O blocks the top row
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"row":0,"col":2,"score":0,"player":"O"}`, rec.Body.String())
	})

	t.Run("Rejects a finished game", func(t *testing.T) {
		rec := serve(router, http.MethodPost, "/api/v1/best-move", `{"board":"OXOOXXXOX","player":"X"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("Rejects malformed input", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{"Not JSON", `{`},
			{"Missing board", `{"player":"X"}`},
			{"Short board", `{"board":"XX"}`},
			{"Unknown player", `{"board":".........","player":"Z"}`},
			{"Unreachable counts", `{"board":"XXX......"}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := serve(router, http.MethodPost, "/api/v1/best-move", tt.body)

				assert.Equal(t, http.StatusBadRequest, rec.Code)

				var resp map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp["error"])
			})
		}
	})
}

func TestHandlers_Outcome(t *testing.T) {
	router := newRouter(t)

	t.Run("Game in progress", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/api/v1/outcome?board=.........", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"in_progress","score":0,"player_turn":"X","best_move":{"row":0,"col":0}}`, rec.Body.String())
	})

	t.Run("Winner", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/api/v1/outcome?board=XXXOO....", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"win","winner":"X","score":1}`, rec.Body.String())
	})

	t.Run("Draw", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/api/v1/outcome?board=OXOOXXXOX", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"draw","score":0}`, rec.Body.String())
	})

	t.Run("Missing board", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/api/v1/outcome", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
