// Package server exposes the catalog lookups as a small JSON API.
package server

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lepinkainen/bookexplorer/internal/view"
)

const shutdownTimeout = 10 * time.Second

// Server wraps a gin engine serving the book API.
type Server struct {
	engine *gin.Engine
}

// New builds the router: /health, /metrics and the /api routes.
func New(catalog view.Catalog) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), RequestLogger(), Metrics())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	NewHandler(catalog).RegisterRoutes(engine.Group("/api"))

	return &Server{engine: engine}
}

// Handler returns the server as a plain http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP API server listening", "addr", addr)
		if err := httpSrv.ListenAndServe(); err != nil && !stdErrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down HTTP API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
