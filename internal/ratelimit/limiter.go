// Package ratelimit は試行履歴とポリシーに基づくレート制限判定を提供する。
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/automactic/gatekeeper/internal/config"
	"github.com/automactic/gatekeeper/internal/history"
	"github.com/automactic/gatekeeper/internal/policy"
)

// PolicySource はレート制限が参照するポリシー値の解決を定義する。
type PolicySource interface {
	Int(ctx context.Context, user policy.User, suffix string, def int64) int64
	Bool(ctx context.Context, user policy.User, suffix string, def bool) bool
}

// Decision はレート制限の判定結果を表す。
type Decision struct {
	Allowed bool
	Reason  string // 拒否時のみ設定される
}

// 拒否理由
const (
	ReasonIPThrottled      = "ip_throttled"
	ReasonPasswordFailures = "password_failures"
	ReasonModifications    = "modification_limit"
	ReasonUniqueMAC        = "unique_mac_window"
)

// Limiter は注入された台帳・ゲート・ポリシーのみで判定する。
// 状態を持たず、台帳への書き込みは行わない。
type Limiter struct {
	ledger history.Ledger
	gate   history.IPGate
	pol    PolicySource
}

// NewLimiter は新しいLimiterを生成する。
func NewLimiter(ledger history.Ledger, gate history.IPGate, pol PolicySource) *Limiter {
	return &Limiter{ledger: ledger, gate: gate, pol: pol}
}

// Check は登録試行を許可するか判定する。
//
// IPゲートはbypassRateLimitフラグに関わらず常に先に適用される。
// フラグが立っている利用者はそれ以降の検査を免除される。
// 利用者単位の検査は、1時間あたりのパスワード失敗数、（新規利用者で
// なくなった後は）1時間あたりのデバイス更新数と未使用MACの窓、の順。
func (l *Limiter) Check(ctx context.Context, user policy.User, ip, mac string) (*Decision, error) {
	interval := time.Duration(l.pol.Int(ctx, user, policy.SuffixIPGateSeconds, config.DefaultIPGateSeconds)) * time.Second
	ok, err := l.gate.Allow(ctx, ip, interval)
	if err != nil {
		return nil, fmt.Errorf("ip gate: %w", err)
	}
	if !ok {
		return &Decision{Reason: ReasonIPThrottled}, nil
	}

	if l.pol.Bool(ctx, user, policy.SuffixBypassRateLimit, false) {
		return &Decision{Allowed: true}, nil
	}

	now := time.Now()
	failed := false

	failures, err := l.ledger.CountSince(ctx, user.Name, history.Filter{LoggedIn: &failed}, now.Add(-time.Hour))
	if err != nil {
		return nil, fmt.Errorf("count password failures: %w", err)
	}
	if int64(failures) > l.pol.Int(ctx, user, policy.SuffixPasswordsPerHour, config.DefaultPasswordsPerHour) {
		return &Decision{Reason: ReasonPasswordFailures}, nil
	}

	total, err := l.ledger.CountSince(ctx, user.Name, history.Filter{HasMAC: true}, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("count total modifications: %w", err)
	}
	if int64(total) <= l.pol.Int(ctx, user, policy.SuffixModificationsUntilNotNew, config.DefaultModificationsUntilNotNew) {
		// まだ新規利用者: 更新数と未使用MACの検査は適用しない
		return &Decision{Allowed: true}, nil
	}

	mods, err := l.ledger.CountSince(ctx, user.Name, history.Filter{HasMAC: true}, now.Add(-time.Hour))
	if err != nil {
		return nil, fmt.Errorf("count recent modifications: %w", err)
	}
	if int64(mods) > l.pol.Int(ctx, user, policy.SuffixModificationsPerHour, config.DefaultModificationsPerHour) {
		return &Decision{Reason: ReasonModifications}, nil
	}

	windowHours := l.pol.Int(ctx, user, policy.SuffixUniqueMACWindowHours, config.DefaultUniqueMACWindowHours)
	seen, err := l.ledger.ExistsMACSince(ctx, user.Name, mac, now.Add(-time.Duration(windowHours)*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("check unique mac window: %w", err)
	}
	if seen {
		return &Decision{Reason: ReasonUniqueMAC}, nil
	}
	return &Decision{Allowed: true}, nil
}
