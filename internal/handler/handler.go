// Package handler はGatekeeper APIのHTTPハンドラーを提供する。
package handler

import (
	"context"
	"net/netip"

	"github.com/automactic/gatekeeper/internal/config"
	"github.com/automactic/gatekeeper/internal/guestcode"
	"github.com/automactic/gatekeeper/internal/history"
	"github.com/automactic/gatekeeper/internal/policy"
	"github.com/automactic/gatekeeper/internal/ratelimit"
	"github.com/automactic/gatekeeper/internal/register"
)

// TraceIDKey はginコンテキストに格納するトレースIDのキー。
const TraceIDKey = "trace_id"

// Registrar はデバイス登録ユースケースを定義する。
type Registrar interface {
	Register(ctx context.Context, user policy.User, ip, mac, label string) *register.Result
}

// PolicyViewer は実効ポリシーの参照を定義する。
type PolicyViewer interface {
	ResolveAll(ctx context.Context, user policy.User) ([]policy.Node, error)
	Prefix(ctx context.Context, user policy.User, suffix string) (netip.Prefix, bool)
}

// RateChecker はレート制限判定を定義する。
type RateChecker interface {
	Check(ctx context.Context, user policy.User, ip, mac string) (*ratelimit.Decision, error)
}

// Handler はGatekeeper APIのハンドラー。
type Handler struct {
	registrar Registrar
	viewer    PolicyViewer
	limiter   RateChecker
	ledger    history.Ledger
	rotator   *guestcode.Rotator // nilの場合はゲストコード機能が無効
	cfg       *config.Config
}

// New は新しいHandlerを生成する。
func New(registrar Registrar, viewer PolicyViewer, limiter RateChecker, ledger history.Ledger, rotator *guestcode.Rotator, cfg *config.Config) *Handler {
	return &Handler{
		registrar: registrar,
		viewer:    viewer,
		limiter:   limiter,
		ledger:    ledger,
		rotator:   rotator,
		cfg:       cfg,
	}
}
