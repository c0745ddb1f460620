// Package policy は階層型の型付きポリシーノードとその解決を提供する。
//
// ポリシーはスコープ（利用者 > 利用者カテゴリ > グローバル）とサフィックス
// （"deviceLimit" など）で特定され、値は宣言されたデータ型で文字列から
// 復号される。
package policy

// Scope はポリシーの適用範囲を表す。数値が小さいほど優先度が高い。
type Scope int

const (
	ScopeUser Scope = iota
	ScopeUserCategory
	ScopeGlobal
)

// String はスコープの保存名を返す。
func (s Scope) String() string {
	switch s {
	case ScopeUser:
		return "user"
	case ScopeUserCategory:
		return "userType"
	case ScopeGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// User はポリシー解決の対象となる利用者を表す。
type User struct {
	Name     string
	Category string
}

// Node は1件のポリシーノードを表す。
type Node struct {
	Scope    Scope
	ScopeKey string // 利用者名またはカテゴリ名。ScopeGlobalでは空。
	Suffix   string // 例: "deviceLimit"、"rateLimit/passwordsPerHour"
	Datatype Datatype
	RawValue string
}

// Key は "scope/scopeKey/suffix" 形式の完全なポリシーキーを返す。
func (n *Node) Key() string {
	if n.Scope == ScopeGlobal {
		return n.Scope.String() + "/" + n.Suffix
	}
	return n.Scope.String() + "/" + n.ScopeKey + "/" + n.Suffix
}
