package config

import "time"

// Valkey接続設定
const (
	ValkeyConnectTimeout = 3 * time.Second
	ValkeyCommandTimeout = 2 * time.Second
	ValkeyPoolSize       = 10
)

// NAC API接続設定
const (
	NacRequestTimeout = 10 * time.Second
	TokenSafetyMargin = 5 * time.Second
)

// Circuit Breaker設定
const (
	CBName             = "nac-api"
	CBMaxRequests      = 3
	CBInterval         = 10 * time.Second
	CBTimeout          = 30 * time.Second
	CBFailureThreshold = 5
)

// レート制限デフォルト値（ポリシー未設定時に適用）
const (
	DefaultPasswordsPerHour         = 5
	DefaultModificationsUntilNotNew = 3
	DefaultModificationsPerHour     = 5
	DefaultUniqueMACWindowHours     = 18
	DefaultIPGateSeconds            = 1
)

// デバイス登録デフォルト値
const (
	DefaultDeviceLimit    = 1
	DefaultExpireDateSpec = "09/04/+4"
	DefaultExpireAction   = 4
	DefaultDeviceRoleID   = 2 // NAC側のGuestロール
)

// ゲストコード設定
const (
	GuestCodeDigits   = 8
	GuestCodeInterval = 24 * time.Hour
)

// サーバーシャットダウン設定
const (
	ShutdownTimeout = 10 * time.Second
)
