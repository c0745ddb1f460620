package handler

import (
	"log/slog"
	"net/http"
	"net/netip"

	"github.com/gin-gonic/gin"

	"github.com/automactic/gatekeeper/internal/dto"
	"github.com/automactic/gatekeeper/internal/httputil"
	"github.com/automactic/gatekeeper/internal/macaddr"
	"github.com/automactic/gatekeeper/internal/policy"
	"github.com/automactic/gatekeeper/internal/register"
)

// HandleRegister はデバイス登録リクエストを処理する。
// ビジネス上の結果（拒否含む）は200で返し、インフラ障害のみ5xxとする。
func (h *Handler) HandleRegister(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.WriteError(c, httputil.BadRequest("invalid request body: "+err.Error()))
		return
	}

	mac, err := macaddr.Normalize(req.MAC)
	if err != nil {
		httputil.WriteError(c, httputil.BadRequest("invalid mac address"))
		return
	}

	user := policy.User{Name: req.Username, Category: req.Category}
	clientIP := c.ClientIP()

	// 接続元ネットワーク制限（設定されている場合のみ）
	if prefix, found := h.viewer.Prefix(c.Request.Context(), user, policy.SuffixLoginIPRestriction); found {
		addr, err := netip.ParseAddr(clientIP)
		if err != nil || !prefix.Contains(addr) {
			slog.Info("registration from restricted network",
				"event_id", "REG_WRONG_NETWORK",
				"user", user.Name,
				"ip", clientIP)
			httputil.WriteError(c, httputil.Forbidden("connecting from an unauthorized network"))
			return
		}
	}

	result := h.registrar.Register(c.Request.Context(), user, clientIP, mac, req.DeviceName)
	if result.Outcome == register.OutcomeAPIFailure {
		httputil.WriteError(c, httputil.BadGateway("device registry unavailable"))
		return
	}

	resp := dto.RegisterResponse{
		Outcome: result.Outcome.String(),
		Reason:  result.Reason,
	}
	if result.Device != nil {
		resp.Device = &dto.DeviceInfo{
			ID:         result.Device.ID,
			MAC:        result.Device.MAC,
			ExpireTime: result.Device.ExpireTime,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// HandleLoginFailure はパスワード失敗をレート制限の計上用に記録する。
func (h *Handler) HandleLoginFailure(c *gin.Context) {
	var req dto.LoginFailureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.WriteError(c, httputil.BadRequest("invalid request body: "+err.Error()))
		return
	}
	e := newFailureEntry(req.Username, c.ClientIP())
	if err := h.ledger.Append(c.Request.Context(), e); err != nil {
		slog.Error("failed to record login failure",
			"event_id", "HISTORY_APPEND_ERR",
			"user", req.Username,
			"error", err)
		httputil.WriteError(c, httputil.InternalServerError("failed to record attempt"))
		return
	}
	c.Status(http.StatusNoContent)
}
