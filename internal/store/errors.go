package store

import "errors"

// ErrValkeyUnavailable はValkeyへの接続・操作に失敗した場合のエラー。
var ErrValkeyUnavailable = errors.New("valkey unavailable")
