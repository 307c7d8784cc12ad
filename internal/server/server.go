// Package server wires the HTTP surface: the health endpoint, metrics,
// the MCP streamable handler, and the A2A protocol routes.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/metalops/ironic-aio/internal/a2a"
	"github.com/metalops/ironic-aio/internal/config"
	"github.com/metalops/ironic-aio/internal/health"
)

// Server hosts the HTTP transports with graceful lifecycle.
type Server struct {
	router *gin.Engine
	srv    *http.Server
	logger *slog.Logger
}

// New builds the router and HTTP server. mcpServer may be nil when the
// MCP surface runs over stdio instead.
func New(settings config.Settings, svc *health.Service, mcpServer *mcp.Server, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	if settings.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(recoveryMiddleware(logger))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(logger))

	// Downstream unreachability is degraded, never an HTTP error.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Check(c.Request.Context()))
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if mcpServer != nil {
		handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return mcpServer
		}, &mcp.StreamableHTTPOptions{Stateless: true})
		router.Any("/mcp", gin.WrapH(handler))
	}

	a2a.Register(router, svc, settings.BaseURL, settings.ServiceName, settings.ServiceVersion, settings.A2ASecret)

	return &Server{
		router: router,
		srv: &http.Server{
			Addr:         ":" + settings.HTTPPort,
			Handler:      router,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
		},
		logger: logger,
	}
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until ctx is done, then shuts down with a bounded timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", slog.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("stopped")
	return nil
}
