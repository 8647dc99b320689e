package server

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebase/backend/config"
	"github.com/tastebase/backend/internal/logger"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates a server serving the given router
func New(cfg *config.Config, router *gin.Engine) *Server {
	return &Server{
		router: router,
		http: &http.Server{
			Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler: router,
		},
	}
}

// Start begins serving requests and blocks until the listener closes
func (s *Server) Start() error {
	logger.Log.Infow("starting http server", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
