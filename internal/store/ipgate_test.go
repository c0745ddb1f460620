package store

import (
	"context"
	"testing"
	"time"

	"github.com/automactic/gatekeeper/internal/history"
)

var _ history.IPGate = (*IPGate)(nil)

func TestIPGateAllow(t *testing.T) {
	vc, mr := newTestStore(t)
	g := NewIPGate(vc)
	ctx := context.Background()

	ok, err := g.Allow(ctx, "10.0.0.1", time.Second)
	if err != nil {
		t.Fatalf("Allow error = %v", err)
	}
	if !ok {
		t.Error("first attempt should be allowed")
	}

	ok, err = g.Allow(ctx, "10.0.0.1", time.Second)
	if err != nil {
		t.Fatalf("Allow error = %v", err)
	}
	if ok {
		t.Error("immediate second attempt should be denied")
	}

	// 他のIPは独立
	ok, err = g.Allow(ctx, "10.0.0.2", time.Second)
	if err != nil {
		t.Fatalf("Allow error = %v", err)
	}
	if !ok {
		t.Error("attempt from another ip should be allowed")
	}

	// 窓の経過後は再び許可される
	mr.FastForward(1500 * time.Millisecond)
	ok, err = g.Allow(ctx, "10.0.0.1", time.Second)
	if err != nil {
		t.Fatalf("Allow error = %v", err)
	}
	if !ok {
		t.Error("attempt after the interval should be allowed")
	}
}

// 拒否された試行でも最終試行時刻は更新される。
// 連続アクセスし続ける限り許可されない。
func TestIPGateDeniedAttemptStillUpdates(t *testing.T) {
	vc, mr := newTestStore(t)
	g := NewIPGate(vc)
	ctx := context.Background()

	if ok, _ := g.Allow(ctx, "10.0.0.1", 2*time.Second); !ok {
		t.Fatal("first attempt should be allowed")
	}
	// 1秒ごとに叩き続けると、1回も2秒空かないので常に拒否
	for i := 0; i < 3; i++ {
		mr.FastForward(time.Second)
		if ok, _ := g.Allow(ctx, "10.0.0.1", 2*time.Second); ok {
			t.Fatalf("attempt %d should be denied (timestamp refreshed on denial)", i+1)
		}
	}
}

func TestIPGateZeroInterval(t *testing.T) {
	vc, _ := newTestStore(t)
	g := NewIPGate(vc)

	for i := 0; i < 3; i++ {
		ok, err := g.Allow(context.Background(), "10.0.0.1", 0)
		if err != nil {
			t.Fatalf("Allow error = %v", err)
		}
		if !ok {
			t.Error("zero interval should always allow")
		}
	}
}
