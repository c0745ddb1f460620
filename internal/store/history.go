package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/automactic/gatekeeper/internal/history"
)

// HistoryLedger はhistory.LedgerのValkey実装。
// 利用者単位のソート済みセットに、試行時刻のUnixミリ秒をスコアとして
// エントリJSONを追記する。
type HistoryLedger struct {
	vc *ValkeyClient
}

// NewHistoryLedger は新しいHistoryLedgerを生成する。
func NewHistoryLedger(vc *ValkeyClient) *HistoryLedger {
	return &HistoryLedger{vc: vc}
}

// Append は1件のエントリを追記する。
func (l *HistoryLedger) Append(ctx context.Context, e history.Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode history entry: %w", err)
	}
	member := redis.Z{Score: float64(e.Time.UnixMilli()), Member: string(data)}
	if err := l.vc.Client().ZAdd(ctx, KeyPrefixHistory+e.User, member).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return nil
}

// CountSince はsince以降のフィルタ一致件数を返す。
func (l *HistoryLedger) CountSince(ctx context.Context, user string, f history.Filter, since time.Time) (int, error) {
	entries, err := l.entriesSince(ctx, user, since)
	if err != nil {
		return 0, err
	}
	count := 0
	for i := range entries {
		if f.Match(&entries[i]) {
			count++
		}
	}
	return count, nil
}

// ExistsMACSince はsince以降に同一MACのエントリが存在するかを返す。
// 空のMACはMAC未記録のエントリとは一致しない。
func (l *HistoryLedger) ExistsMACSince(ctx context.Context, user, mac string, since time.Time) (bool, error) {
	if mac == "" {
		return false, nil
	}
	entries, err := l.entriesSince(ctx, user, since)
	if err != nil {
		return false, err
	}
	for i := range entries {
		if entries[i].MAC == mac {
			return true, nil
		}
	}
	return false, nil
}

// entriesSince はsince以降のエントリを取得する。
// 復号できないエントリはスキップし、警告ログを残す。
func (l *HistoryLedger) entriesSince(ctx context.Context, user string, since time.Time) ([]history.Entry, error) {
	min := "-inf"
	if !since.IsZero() {
		min = strconv.FormatInt(since.UnixMilli(), 10)
	}
	members, err := l.vc.Client().ZRangeByScore(ctx, KeyPrefixHistory+user, &redis.ZRangeBy{
		Min: min,
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	entries := make([]history.Entry, 0, len(members))
	for _, m := range members {
		var e history.Entry
		if err := json.Unmarshal([]byte(m), &e); err != nil {
			slog.Warn("skipping corrupt history entry",
				"event_id", "HISTORY_ENTRY_CORRUPT",
				"user", user,
				"error", err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}
