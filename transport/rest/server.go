package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/server"
)

// NewRouter wires the analysis endpoints.
func NewRouter(logger *slog.Logger, handlers *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	router.GET("/ping", handlers.Ping)

	v1 := router.Group("/api/v1")
	v1.POST("/best-move", handlers.BestMove)
	v1.GET("/outcome", handlers.Outcome)

	return router
}

// Start - serves the REST API until ctx is cancelled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	return server.Run(ctx, srv)
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	log := logger.With("component", "rest")

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		}

		if len(c.Errors) > 0 {
			log.Warn("request failed", append(attrs, "error", c.Errors.Last().Err)...)
			return
		}

		log.Debug("request served", attrs...)
	}
}
