package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// IPGate はhistory.IPGateのValkey実装。
// 最終試行時刻は、minIntervalをTTLとするキーの存在そのもので表現する。
// SET ... PX ... GET は旧値の取得と上書きを1コマンドで行うため、
// 同一IPからの並行リクエストが両方通過することはない。
type IPGate struct {
	vc *ValkeyClient
}

// NewIPGate は新しいIPGateを生成する。
func NewIPGate(vc *ValkeyClient) *IPGate {
	return &IPGate{vc: vc}
}

// Allow は前回試行からminInterval以上経過していればtrueを返す。
// 判定結果に関わらず最終試行時刻は更新される。
func (g *IPGate) Allow(ctx context.Context, ip string, minInterval time.Duration) (bool, error) {
	if minInterval <= 0 {
		return true, nil
	}
	now := strconv.FormatInt(time.Now().UnixMilli(), 10)
	err := g.vc.Client().SetArgs(ctx, KeyPrefixIPGate+ip, now, redis.SetArgs{
		TTL: minInterval,
		Get: true,
	}).Err()
	if errors.Is(err, redis.Nil) {
		// 旧値なし = 窓内に先行する試行がない
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return false, nil
}
