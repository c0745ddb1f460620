package server

import (
	"github.com/gin-gonic/gin"

	"github.com/automactic/gatekeeper/internal/handler"
)

// SetupRouter はルーティングを設定する。
func SetupRouter(engine *gin.Engine, h *handler.Handler) {
	engine.GET("/health", h.HandleHealth)

	v1 := engine.Group("/api/v1")
	{
		v1.POST("/register", h.HandleRegister)
		v1.POST("/login-failure", h.HandleLoginFailure)
		v1.GET("/policy/:username", h.HandlePolicyView)
		v1.GET("/ratelimit/:username", h.HandleRateLimit)
		v1.GET("/guest-code", h.HandleGuestCode)
	}
}
