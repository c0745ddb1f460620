// Package nac はNACデバイスレジストリへの認証付きクライアントを提供する。
//
// トークンはclient_credentialsグラントで取得してキャッシュし、認可失敗時は
// 強制更新して1回だけ再試行する。デバイスレコードの正はNAC側にあり、
// このパッケージは読み書きの手段のみ提供する。
package nac

import (
	"time"
)

// Device はNAC側のデバイス登録レコードを表す。
type Device struct {
	ID          int    `json:"id"`
	MAC         string `json:"mac"`
	VisitorName string `json:"visitor_name"`
	Notes       string `json:"notes"`
	StartTime   int64  `json:"start_time"`
	ExpireTime  int64  `json:"expire_time"`
	Enabled     bool   `json:"enabled"`
	RoleID      int    `json:"role_id"`
}

// DeviceList はデバイス一覧取得の結果を表す。
type DeviceList struct {
	Count int      `json:"count"`
	Items []Device `json:"items"`
}

// CreateDeviceRequest はデバイス作成パラメータを表す。
type CreateDeviceRequest struct {
	VisitorName  string
	MAC          string // ベア形式
	Notes        string
	ExpireTime   time.Time
	ExpireAction int
	RoleID       int
}

// UpdateFields はデバイス更新で変更するフィールド群を表す。
// ゼロ値のフィールドはリクエストに含まれない。
type UpdateFields struct {
	MAC        string
	Notes      string
	Enabled    *bool
	RoleID     int
	ExpireTime *time.Time
}

// body は更新リクエストのボディを組み立てる。
func (f *UpdateFields) body() map[string]any {
	m := make(map[string]any)
	if f == nil {
		return m
	}
	if f.MAC != "" {
		m["mac"] = f.MAC
	}
	if f.Notes != "" {
		m["notes"] = f.Notes
	}
	if f.Enabled != nil {
		m["enabled"] = *f.Enabled
	}
	if f.RoleID != 0 {
		m["role_id"] = f.RoleID
	}
	if f.ExpireTime != nil {
		m["expire_time"] = f.ExpireTime.Unix()
	}
	return m
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}
