package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/automactic/gatekeeper/internal/history"
	"github.com/automactic/gatekeeper/internal/policy"
)

type stubLedger struct {
	failures int  // 直近1時間のパスワード失敗数
	total    int  // 全期間のデバイス更新数
	mods     int  // 直近1時間のデバイス更新数
	macSeen  bool // 窓内に同一MACあり
	err      error
}

func (s *stubLedger) Append(context.Context, history.Entry) error { return nil }

func (s *stubLedger) CountSince(_ context.Context, _ string, f history.Filter, since time.Time) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	if f.LoggedIn != nil {
		return s.failures, nil
	}
	if since.IsZero() {
		return s.total, nil
	}
	return s.mods, nil
}

func (s *stubLedger) ExistsMACSince(context.Context, string, string, time.Time) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.macSeen, nil
}

type stubGate struct {
	allow       bool
	gotInterval time.Duration
}

func (s *stubGate) Allow(_ context.Context, _ string, minInterval time.Duration) (bool, error) {
	s.gotInterval = minInterval
	return s.allow, nil
}

type stubPolicy struct {
	ints  map[string]int64
	bools map[string]bool
}

func (s *stubPolicy) Int(_ context.Context, _ policy.User, suffix string, def int64) int64 {
	if v, ok := s.ints[suffix]; ok {
		return v
	}
	return def
}

func (s *stubPolicy) Bool(_ context.Context, _ policy.User, suffix string, def bool) bool {
	if v, ok := s.bools[suffix]; ok {
		return v
	}
	return def
}

var testUser = policy.User{Name: "osis123456", Category: "student"}

func newLimiter(ledger *stubLedger, gate *stubGate, pol *stubPolicy) *Limiter {
	if pol == nil {
		pol = &stubPolicy{}
	}
	return NewLimiter(ledger, gate, pol)
}

func check(t *testing.T, l *Limiter) *Decision {
	t.Helper()
	d, err := l.Check(context.Background(), testUser, "10.0.0.1", "aabbccddeeff")
	if err != nil {
		t.Fatalf("Check error = %v", err)
	}
	return d
}

func TestCheckAllowsBrandNewUser(t *testing.T) {
	l := newLimiter(&stubLedger{}, &stubGate{allow: true}, nil)
	if d := check(t, l); !d.Allowed {
		t.Errorf("Decision = %+v, want allowed", d)
	}
}

func TestCheckIPThrottle(t *testing.T) {
	gate := &stubGate{allow: false}
	// bypassが立っていてもIPゲートは先に適用される
	pol := &stubPolicy{bools: map[string]bool{policy.SuffixBypassRateLimit: true}}
	l := newLimiter(&stubLedger{}, gate, pol)
	d := check(t, l)
	if d.Allowed || d.Reason != ReasonIPThrottled {
		t.Errorf("Decision = %+v, want denied with %s", d, ReasonIPThrottled)
	}
	if gate.gotInterval != time.Second {
		t.Errorf("gate interval = %v, want default 1s", gate.gotInterval)
	}
}

func TestCheckBypassSkipsUserChecks(t *testing.T) {
	ledger := &stubLedger{failures: 100, total: 100, mods: 100, macSeen: true}
	pol := &stubPolicy{bools: map[string]bool{policy.SuffixBypassRateLimit: true}}
	l := newLimiter(ledger, &stubGate{allow: true}, pol)
	if d := check(t, l); !d.Allowed {
		t.Errorf("Decision = %+v, want allowed via bypass", d)
	}
}

func TestCheckPasswordFailures(t *testing.T) {
	// 閾値ちょうどは許可、超過で拒否
	l := newLimiter(&stubLedger{failures: 5}, &stubGate{allow: true}, nil)
	if d := check(t, l); !d.Allowed {
		t.Errorf("Decision at threshold = %+v, want allowed", d)
	}
	l = newLimiter(&stubLedger{failures: 6}, &stubGate{allow: true}, nil)
	d := check(t, l)
	if d.Allowed || d.Reason != ReasonPasswordFailures {
		t.Errorf("Decision over threshold = %+v, want denied with %s", d, ReasonPasswordFailures)
	}
}

// 新規利用者は更新数・未使用MACの検査対象にならない。
// 拒否されうるのはパスワード失敗の分岐のみ。
func TestCheckNewUserSkipsModificationChecks(t *testing.T) {
	ledger := &stubLedger{total: 3, mods: 100, macSeen: true}
	l := newLimiter(ledger, &stubGate{allow: true}, nil)
	if d := check(t, l); !d.Allowed {
		t.Errorf("Decision = %+v, want allowed for still-new user", d)
	}
}

func TestCheckModificationLimit(t *testing.T) {
	ledger := &stubLedger{total: 4, mods: 6}
	l := newLimiter(ledger, &stubGate{allow: true}, nil)
	d := check(t, l)
	if d.Allowed || d.Reason != ReasonModifications {
		t.Errorf("Decision = %+v, want denied with %s", d, ReasonModifications)
	}
}

func TestCheckUniqueMACWindow(t *testing.T) {
	ledger := &stubLedger{total: 4, mods: 2, macSeen: true}
	l := newLimiter(ledger, &stubGate{allow: true}, nil)
	d := check(t, l)
	if d.Allowed || d.Reason != ReasonUniqueMAC {
		t.Errorf("Decision = %+v, want denied with %s", d, ReasonUniqueMAC)
	}
}

func TestCheckPolicyOverridesDefaults(t *testing.T) {
	pol := &stubPolicy{ints: map[string]int64{
		policy.SuffixPasswordsPerHour: 10,
		policy.SuffixIPGateSeconds:    30,
	}}
	gate := &stubGate{allow: true}
	l := newLimiter(&stubLedger{failures: 8}, gate, pol)
	if d := check(t, l); !d.Allowed {
		t.Errorf("Decision = %+v, want allowed under raised threshold", d)
	}
	if gate.gotInterval != 30*time.Second {
		t.Errorf("gate interval = %v, want 30s from policy", gate.gotInterval)
	}
}

func TestCheckLedgerError(t *testing.T) {
	ledgerErr := errors.New("valkey down")
	l := newLimiter(&stubLedger{err: ledgerErr}, &stubGate{allow: true}, nil)
	_, err := l.Check(context.Background(), testUser, "10.0.0.1", "aabbccddeeff")
	if !errors.Is(err, ledgerErr) {
		t.Errorf("Check error = %v, want wrapped ledger error", err)
	}
}
