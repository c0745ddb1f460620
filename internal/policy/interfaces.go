package policy

import "context"

// NodeSource はポリシーノードの読み出しを定義する。
// 実装はinternal/storeが提供する。
type NodeSource interface {
	// Node は指定スコープのノードを1件取得する。
	// 存在しない場合はErrNodeNotFoundを返す。
	Node(ctx context.Context, scope Scope, scopeKey, suffix string) (*Node, error)
	// Nodes は指定スコープの全ノードを取得する。
	Nodes(ctx context.Context, scope Scope, scopeKey string) ([]Node, error)
}
