package nac

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidArgument は呼び出し契約違反（セレクタ誤用・必須項目欠落）のエラー。
	// ネットワーク呼び出し前に検出される。
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAmbiguousOwner は所有者ラベルがちょうど1件のデバイスに解決されない
	// 場合のエラー。
	ErrAmbiguousOwner = errors.New("owner label does not resolve to exactly one device")
	// ErrCircuitOpen はCircuit Breakerが開いておりリクエストを送出しなかった
	// 場合のエラー。
	ErrCircuitOpen = errors.New("nac api circuit open")
	// ErrConnectionFailed はNAC APIへの接続に失敗した場合のエラー。
	ErrConnectionFailed = errors.New("nac api connection failed")
)

// APIError はNAC APIの非2xx応答を表す。認可失敗は含まない。
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("nac api error: status %d: %s", e.StatusCode, e.Detail)
}

// IsNotFound は対象デバイスが存在しない404応答かを判定する。
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// AuthError はトークン取得の失敗、または強制更新後の再試行でも認可が
// 通らなかったことを表す。これ以上の自動更新は行われない。
type AuthError struct {
	Detail string
}

func (e *AuthError) Error() string {
	return "nac api auth failed: " + e.Detail
}
