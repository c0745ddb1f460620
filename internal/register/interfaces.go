// Package register はデバイス登録のユースケースを提供する。
package register

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=register

import (
	"context"

	"github.com/automactic/gatekeeper/internal/history"
	"github.com/automactic/gatekeeper/internal/nac"
	"github.com/automactic/gatekeeper/internal/policy"
	"github.com/automactic/gatekeeper/internal/ratelimit"
	"github.com/automactic/gatekeeper/internal/reldate"
)

// RateChecker はレート制限判定を定義する。
type RateChecker interface {
	Check(ctx context.Context, user policy.User, ip, mac string) (*ratelimit.Decision, error)
}

// PolicySource は登録時に参照するポリシー値の解決を定義する。
type PolicySource interface {
	Int(ctx context.Context, user policy.User, suffix string, def int64) int64
	Date(ctx context.Context, user policy.User, suffix string, def reldate.RelativeDate) reldate.RelativeDate
}

// DeviceAPI はNACデバイスレジストリの操作を定義する。
type DeviceAPI interface {
	GetDevice(ctx context.Context, sel nac.Selector) (*nac.DeviceList, error)
	CreateDevice(ctx context.Context, req *nac.CreateDeviceRequest) (*nac.Device, error)
	UpdateDevice(ctx context.Context, sel nac.Selector, fields *nac.UpdateFields) (*nac.Device, error)
}

// Ledger は試行結果の記録を定義する。
type Ledger interface {
	Append(ctx context.Context, e history.Entry) error
}
