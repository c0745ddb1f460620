package nac

import "fmt"

// Selector はデバイスの特定方法を表す。ID・MAC・VisitorNameのうち
// ちょうど1つだけを指定しなければならない。
type Selector struct {
	ID          int
	MAC         string
	VisitorName string
}

// ByID はデバイスIDによるセレクタを返す。
func ByID(id int) Selector { return Selector{ID: id} }

// ByMAC はMACアドレス（ベア形式）によるセレクタを返す。
func ByMAC(mac string) Selector { return Selector{MAC: mac} }

// ByName は所有者ラベルによるセレクタを返す。
func ByName(name string) Selector { return Selector{VisitorName: name} }

// validate は相互排他制約を検査する。ネットワーク呼び出し前に実行される。
func (s Selector) validate() error {
	n := 0
	if s.ID != 0 {
		n++
	}
	if s.MAC != "" {
		n++
	}
	if s.VisitorName != "" {
		n++
	}
	if n != 1 {
		return fmt.Errorf("%w: exactly one of id, mac, visitor_name must be set", ErrInvalidArgument)
	}
	return nil
}
