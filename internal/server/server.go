// Package server exposes the solver over HTTP: solve, sequence check and
// taboo analysis endpoints plus health and prometheus metrics.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sokoban/internal/cache"
	"sokoban/internal/ctxlog"
)

// Config holds the HTTP server configuration.
type Config struct {
	Addr      string
	Heuristic string
	NodeLimit int
}

// Server is the HTTP solve service.
type Server struct {
	cfg    Config
	log    *slog.Logger
	store  *cache.Store // optional
	engine *gin.Engine
}

// New builds the server and its routes. store may be nil.
func New(cfg Config, log *slog.Logger, store *cache.Store) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), requestLog(log))

	s := &Server{cfg: cfg, log: log, store: store, engine: engine}

	engine.GET("/healthz", s.handleHealth)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := engine.Group("/v1")
	v1.POST("/solve", s.handleSolve)
	v1.POST("/check", s.handleCheck)
	v1.POST("/taboo", s.handleTaboo)

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// requestID tags every request, honoring a caller-provided X-Request-ID.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Set("request_id", id)
		c.Next()
	}
}

// requestLog writes one line per request and stashes a request-scoped logger
// in the context for the handlers.
func requestLog(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := log.With("request_id", c.GetString("request_id"))
		c.Request = c.Request.WithContext(ctxlog.With(c.Request.Context(), reqLog))

		start := time.Now()
		c.Next()

		reqLog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start))
	}
}
