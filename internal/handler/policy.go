package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/automactic/gatekeeper/internal/dto"
	"github.com/automactic/gatekeeper/internal/history"
	"github.com/automactic/gatekeeper/internal/httputil"
	"github.com/automactic/gatekeeper/internal/macaddr"
	"github.com/automactic/gatekeeper/internal/policy"
)

// HandlePolicyView は利用者の実効ポリシー一覧を返す。
func (h *Handler) HandlePolicyView(c *gin.Context) {
	user := policy.User{
		Name:     c.Param("username"),
		Category: c.Query("category"),
	}
	nodes, err := h.viewer.ResolveAll(c.Request.Context(), user)
	if err != nil {
		slog.Error("failed to resolve effective policy",
			"event_id", "POLICY_RESOLVE_ERR",
			"user", user.Name,
			"error", err)
		httputil.WriteError(c, httputil.InternalServerError("policy store unavailable"))
		return
	}
	views := make([]dto.PolicyNodeView, 0, len(nodes))
	for _, n := range nodes {
		views = append(views, dto.PolicyNodeView{
			Scope:  n.Scope.String(),
			Suffix: n.Suffix,
			Type:   n.Datatype.String(),
			Value:  n.RawValue,
		})
	}
	c.JSON(http.StatusOK, dto.PolicyResponse{
		Username: user.Name,
		Category: user.Category,
		Nodes:    views,
	})
}

// HandleRateLimit はレート制限判定のプレビューを返す。
// 台帳には何も記録しないが、IPゲートの最終試行時刻は更新される。
func (h *Handler) HandleRateLimit(c *gin.Context) {
	user := policy.User{
		Name:     c.Param("username"),
		Category: c.Query("category"),
	}
	mac := c.Query("mac")
	if mac != "" {
		normalized, err := macaddr.Normalize(mac)
		if err != nil {
			httputil.WriteError(c, httputil.BadRequest("invalid mac address"))
			return
		}
		mac = normalized
	}
	dec, err := h.limiter.Check(c.Request.Context(), user, c.ClientIP(), mac)
	if err != nil {
		slog.Error("rate limit check failed",
			"event_id", "RATELIMIT_CHECK_ERR",
			"user", user.Name,
			"error", err)
		httputil.WriteError(c, httputil.InternalServerError("rate limit check failed"))
		return
	}
	c.JSON(http.StatusOK, dto.RateLimitResponse{Allowed: dec.Allowed, Reason: dec.Reason})
}

// newFailureEntry は失敗試行のエントリを作る。MACは記録しない。
func newFailureEntry(user, ip string) history.Entry {
	return history.NewEntry(user, "", ip, false, false)
}
