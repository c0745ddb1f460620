package history

import (
	"context"
	"time"
)

// Ledger は試行履歴への追記と集計を定義する。
// 実装はinternal/storeが提供する。
type Ledger interface {
	// Append は1件のエントリを追記する。
	Append(ctx context.Context, e Entry) error
	// CountSince はsince以降のフィルタ一致件数を返す。sinceのゼロ値は全期間。
	CountSince(ctx context.Context, user string, f Filter, since time.Time) (int, error)
	// ExistsMACSince はsince以降に同一MACのエントリが存在するかを返す。
	ExistsMACSince(ctx context.Context, user, mac string, since time.Time) (bool, error)
}

// IPGate はIP単位の最小試行間隔ゲートを定義する。
type IPGate interface {
	// Allow は前回試行からminInterval以上経過していればtrueを返す。
	// 判定結果に関わらず最終試行時刻は更新される。判定と更新はIPごとに
	// 原子的に行われる。
	Allow(ctx context.Context, ip string, minInterval time.Duration) (bool, error)
}
