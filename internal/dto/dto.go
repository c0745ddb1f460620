// Package dto はリクエスト・レスポンスのデータ転送オブジェクトを定義する。
package dto

// RegisterRequest はデバイス登録リクエストを表す。
type RegisterRequest struct {
	Username   string `json:"username" binding:"required"`
	Category   string `json:"category" binding:"required"`
	MAC        string `json:"mac" binding:"required"`
	DeviceName string `json:"device_name"`
}

// RegisterResponse は登録試行の結果を表す。
type RegisterResponse struct {
	Outcome string      `json:"outcome"`
	Reason  string      `json:"reason,omitempty"`
	Device  *DeviceInfo `json:"device,omitempty"`
}

// DeviceInfo は登録済みデバイスの要約を表す。
type DeviceInfo struct {
	ID         int    `json:"id"`
	MAC        string `json:"mac"`
	ExpireTime int64  `json:"expire_time,omitempty"`
}

// LoginFailureRequest はパスワード失敗の記録リクエストを表す。
type LoginFailureRequest struct {
	Username string `json:"username" binding:"required"`
}

// PolicyNodeView は実効ポリシーの1ノードを表す。
type PolicyNodeView struct {
	Scope  string `json:"scope"`
	Suffix string `json:"suffix"`
	Type   string `json:"type"`
	Value  string `json:"value"`
}

// PolicyResponse は利用者の実効ポリシー一覧を表す。
type PolicyResponse struct {
	Username string           `json:"username"`
	Category string           `json:"category,omitempty"`
	Nodes    []PolicyNodeView `json:"nodes"`
}

// RateLimitResponse はレート制限プレビューの結果を表す。
type RateLimitResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// GuestCodeResponse は現在のゲストコードを表す。
type GuestCodeResponse struct {
	Code             string `json:"code"`
	RemainingSeconds int64  `json:"remaining_seconds"`
}
