// Package history はログイン・登録試行の追記専用台帳を定義する。
package history

import (
	"time"

	"github.com/google/uuid"
)

// Entry は台帳の1レコードを表す。追記後は変更されない。
type Entry struct {
	ID            string    `json:"id"`
	Time          time.Time `json:"time"`
	User          string    `json:"user"`
	MAC           string    `json:"mac,omitempty"` // ベア形式。デバイス未更新の試行では空。
	IP            string    `json:"ip"`
	LoggedIn      bool      `json:"logged_in"`
	DeviceUpdated bool      `json:"device_updated"`
}

// NewEntry は採番・時刻付与済みのEntryを生成する。
func NewEntry(user, mac, ip string, loggedIn, deviceUpdated bool) Entry {
	return Entry{
		ID:            uuid.NewString(),
		Time:          time.Now(),
		User:          user,
		MAC:           mac,
		IP:            ip,
		LoggedIn:      loggedIn,
		DeviceUpdated: deviceUpdated,
	}
}

// Filter はCountSinceの絞り込み条件を表す。ゼロ値は全件に一致する。
type Filter struct {
	HasMAC   bool  // MACが記録されたエントリのみ
	LoggedIn *bool // 認証成否で絞り込む。nilは不問。
}

// Match はエントリがフィルタ条件を満たすかを判定する。
func (f Filter) Match(e *Entry) bool {
	if f.HasMAC && e.MAC == "" {
		return false
	}
	if f.LoggedIn != nil && *f.LoggedIn != e.LoggedIn {
		return false
	}
	return true
}
