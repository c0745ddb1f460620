package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/automactic/gatekeeper/internal/dto"
	"github.com/automactic/gatekeeper/internal/httputil"
)

// HandleGuestCode は現在のゲストコードと残り有効時間を返す。
func (h *Handler) HandleGuestCode(c *gin.Context) {
	if h.rotator == nil {
		httputil.WriteError(c, httputil.ServiceUnavailable("guest code is not configured"))
		return
	}
	now := time.Now()
	c.JSON(http.StatusOK, dto.GuestCodeResponse{
		Code:             h.rotator.Code(now),
		RemainingSeconds: int64(h.rotator.Remaining(now) / time.Second),
	})
}

// HandleHealth は死活監視用のエンドポイント。
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
