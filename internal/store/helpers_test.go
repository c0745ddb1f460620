package store

import (
	"net"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/automactic/gatekeeper/internal/config"
)

// newTestStore はminiredisに接続したValkeyClientを返す。
func newTestStore(t *testing.T) (*ValkeyClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	if err != nil {
		t.Fatalf("SplitHostPort(%q) error = %v", mr.Addr(), err)
	}
	cfg := &config.Config{RedisHost: host, RedisPort: port}
	vc, err := NewValkeyClient(cfg)
	if err != nil {
		t.Fatalf("NewValkeyClient error = %v", err)
	}
	t.Cleanup(func() { vc.Close() })
	return vc, mr
}
