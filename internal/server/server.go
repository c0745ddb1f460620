// Package server はHTTPサーバーの構成とライフサイクルを提供する。
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/automactic/gatekeeper/internal/config"
	"github.com/automactic/gatekeeper/internal/handler"
)

// Server はGatekeeperのHTTPサーバー。
type Server struct {
	httpServer *http.Server
}

// New は新しいServerを生成する。
func New(cfg *config.Config, h *handler.Handler) *Server {
	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	engine.Use(TraceIDMiddleware(), LoggingMiddleware(), RecoveryMiddleware())
	SetupRouter(engine, h)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Run はサーバーを起動する。ブロックする。
func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown はサーバーを停止する。
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
