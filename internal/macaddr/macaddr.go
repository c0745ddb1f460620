// Package macaddr はMACアドレスの正規化と属性判定を提供する。
package macaddr

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrInvalidMAC はMACアドレスとして解釈できない入力に対するエラー。
var ErrInvalidMAC = errors.New("invalid mac address")

// Normalize はMACアドレスをNAC APIのベア形式（区切りなし小文字12桁）へ
// 変換する。コロン・ハイフン・ドット区切りおよび区切りなしの表記を
// 受け付ける。EUI-48のみ有効。
func Normalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	candidate := s
	if len(s) == 12 && !strings.ContainsAny(s, ":-.") {
		var b strings.Builder
		for i := 0; i < 12; i += 2 {
			if i > 0 {
				b.WriteByte(':')
			}
			b.WriteString(s[i : i+2])
		}
		candidate = b.String()
	}
	hw, err := net.ParseMAC(candidate)
	if err != nil || len(hw) != 6 {
		return "", fmt.Errorf("%w: %q", ErrInvalidMAC, s)
	}
	return strings.ToLower(strings.ReplaceAll(hw.String(), ":", "")), nil
}

// IsLocallyAdministered は第1オクテットのローカル管理ビットが立っているかを
// 返す。プライバシー保護のためにOSがランダム化したアドレスの検出に使う。
// 引数はNormalize済みのベア形式であること。
func IsLocallyAdministered(bare string) bool {
	if len(bare) < 2 {
		return false
	}
	b, err := hex.DecodeString(bare[:2])
	if err != nil {
		return false
	}
	return b[0]&0x02 != 0
}
