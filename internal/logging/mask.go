// Package logging はログ出力用の整形ユーティリティを提供する。
package logging

import "strings"

// MaskMAC はベア形式のMACアドレスをログ用にマスキングする。
// OUI部（先頭6桁）のみ残す。enabledがfalseの場合はそのまま返す。
func MaskMAC(mac string, enabled bool) string {
	if !enabled || len(mac) <= 6 {
		return mac
	}
	return mac[:6] + strings.Repeat("*", len(mac)-6)
}
