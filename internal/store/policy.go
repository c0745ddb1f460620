package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/automactic/gatekeeper/internal/policy"
)

// PolicyStore はpolicy.NodeSourceのValkey実装。書き込みも提供する。
// ノードはスコープキー単位のハッシュに、サフィックスをフィールド名、
// 型と値のJSONをフィールド値として保存する。
type PolicyStore struct {
	vc *ValkeyClient
}

// NewPolicyStore は新しいPolicyStoreを生成する。
func NewPolicyStore(vc *ValkeyClient) *PolicyStore {
	return &PolicyStore{vc: vc}
}

type nodeRecord struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// policyKey はスコープのハッシュキーを返す。
func policyKey(scope policy.Scope, scopeKey string) string {
	if scope == policy.ScopeGlobal {
		return KeyPrefixPolicy + scope.String()
	}
	return KeyPrefixPolicy + scope.String() + ":" + scopeKey
}

// Node は1件のポリシーノードを取得する。
func (s *PolicyStore) Node(ctx context.Context, scope policy.Scope, scopeKey, suffix string) (*policy.Node, error) {
	raw, err := s.vc.Client().HGet(ctx, policyKey(scope, scopeKey), suffix).Result()
	if errors.Is(err, redis.Nil) {
		return nil, policy.ErrNodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return decodeNode(scope, scopeKey, suffix, raw)
}

// Nodes は指定スコープの全ノードを取得する。
// 復号できないノードはスキップし、警告ログを残す。
func (s *PolicyStore) Nodes(ctx context.Context, scope policy.Scope, scopeKey string) ([]policy.Node, error) {
	fields, err := s.vc.Client().HGetAll(ctx, policyKey(scope, scopeKey)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	nodes := make([]policy.Node, 0, len(fields))
	for suffix, raw := range fields {
		n, err := decodeNode(scope, scopeKey, suffix, raw)
		if err != nil {
			slog.Warn("skipping corrupt policy node",
				"event_id", "POLICY_NODE_CORRUPT",
				"key", policyKey(scope, scopeKey),
				"suffix", suffix,
				"error", err)
			continue
		}
		nodes = append(nodes, *n)
	}
	return nodes, nil
}

// SetNode はポリシーノードを書き込む。
// raw値が宣言型で損失なく往復復号できない場合は拒否する。
func (s *PolicyStore) SetNode(ctx context.Context, n *policy.Node) error {
	if n.Suffix == "" {
		return policy.ErrEmptySuffix
	}
	if err := policy.Validate(n.Datatype, n.RawValue); err != nil {
		return err
	}
	rec, err := json.Marshal(nodeRecord{Type: n.Datatype.String(), Value: n.RawValue})
	if err != nil {
		return fmt.Errorf("encode policy node: %w", err)
	}
	if err := s.vc.Client().HSet(ctx, policyKey(n.Scope, n.ScopeKey), n.Suffix, string(rec)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return nil
}

// DeleteNode はポリシーノードを削除する。存在しない場合もエラーにしない。
func (s *PolicyStore) DeleteNode(ctx context.Context, scope policy.Scope, scopeKey, suffix string) error {
	if err := s.vc.Client().HDel(ctx, policyKey(scope, scopeKey), suffix).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return nil
}

func decodeNode(scope policy.Scope, scopeKey, suffix, raw string) (*policy.Node, error) {
	var rec nodeRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decode policy node %s: %w", suffix, err)
	}
	dt, err := policy.ParseDatatype(rec.Type)
	if err != nil {
		return nil, err
	}
	return &policy.Node{
		Scope:    scope,
		ScopeKey: scopeKey,
		Suffix:   suffix,
		Datatype: dt,
		RawValue: rec.Value,
	}, nil
}
