package policy

import (
	"errors"
	"fmt"
)

var (
	// ErrNodeNotFound は指定スコープにノードが存在しない場合のエラー。
	ErrNodeNotFound = errors.New("policy node not found")
	// ErrUnknownDatatype は未知のデータ型名が指定された場合のエラー。
	ErrUnknownDatatype = errors.New("unknown policy datatype")
	// ErrEmptySuffix はサフィックスが空の場合のエラー。
	ErrEmptySuffix = errors.New("policy suffix must not be empty")
)

// DecodeError は保存値が宣言型で復号できないことを表す。
// データ整合性の問題であり、呼び出し側でログに記録されるべきもの。
type DecodeError struct {
	Node Node
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("policy %s: cannot decode %q as %s: %v",
		e.Node.Key(), e.Node.RawValue, e.Node.Datatype, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
