package policy

import (
	"context"
	"errors"
	"log/slog"
	"net/netip"
	"sort"

	"github.com/automactic/gatekeeper/internal/reldate"
)

// Resolver はスコープ優先順位に従ってポリシー値を解決する。
type Resolver struct {
	src NodeSource
}

// NewResolver は新しいResolverを生成する。
func NewResolver(src NodeSource) *Resolver {
	return &Resolver{src: src}
}

// Resolve は user > userType > global の優先順位で値を解決する。
// 最初に見つかったスコープのノードが勝ち、それより低いスコープは
// 参照されない。どのスコープにも存在しない場合はfound=falseを返す。
// 見つかったノードが宣言型で復号できない場合は*DecodeErrorを返す。
func (r *Resolver) Resolve(ctx context.Context, user User, suffix string) (Value, bool, error) {
	if suffix == "" {
		return Value{}, false, ErrEmptySuffix
	}
	probes := []struct {
		scope Scope
		key   string
	}{
		{ScopeUser, user.Name},
		{ScopeUserCategory, user.Category},
		{ScopeGlobal, ""},
	}
	for _, p := range probes {
		if p.scope != ScopeGlobal && p.key == "" {
			continue
		}
		node, err := r.src.Node(ctx, p.scope, p.key, suffix)
		if errors.Is(err, ErrNodeNotFound) {
			continue
		}
		if err != nil {
			return Value{}, false, err
		}
		v, err := Decode(node.Datatype, node.RawValue)
		if err != nil {
			return Value{}, false, &DecodeError{Node: *node, Err: err}
		}
		return v, true, nil
	}
	return Value{}, false, nil
}

// ResolveAll は利用者に適用される実効ポリシーノード一覧を返す。
// 同一サフィックスが複数スコープに存在する場合は優先度の高い
// スコープのノードのみ残る。結果はサフィックス昇順。
func (r *Resolver) ResolveAll(ctx context.Context, user User) ([]Node, error) {
	probes := []struct {
		scope Scope
		key   string
	}{
		// 低優先から順に上書きする
		{ScopeGlobal, ""},
		{ScopeUserCategory, user.Category},
		{ScopeUser, user.Name},
	}
	effective := make(map[string]Node)
	for _, p := range probes {
		if p.scope != ScopeGlobal && p.key == "" {
			continue
		}
		nodes, err := r.src.Nodes(ctx, p.scope, p.key)
		if err != nil {
			return nil, err
		}
		for _, n := range nodes {
			effective[n.Suffix] = n
		}
	}
	out := make([]Node, 0, len(effective))
	for _, n := range effective {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Suffix < out[j].Suffix })
	return out, nil
}

// Int は整数ポリシーを解決する。未設定・型不一致・復号不能の場合は
// defを返す。復号エラーはデータ整合性の問題としてログに記録する。
func (r *Resolver) Int(ctx context.Context, user User, suffix string, def int64) int64 {
	v, found, ok := r.lookup(ctx, user, suffix)
	if !ok || !found {
		return def
	}
	if v.Type != DatatypeInt {
		r.warnTypeMismatch(user, suffix, DatatypeInt, v.Type)
		return def
	}
	return v.Int
}

// Bool は真偽値ポリシーを解決する。未設定・型不一致・復号不能の場合は
// defを返す。
func (r *Resolver) Bool(ctx context.Context, user User, suffix string, def bool) bool {
	v, found, ok := r.lookup(ctx, user, suffix)
	if !ok || !found {
		return def
	}
	if v.Type != DatatypeBool {
		r.warnTypeMismatch(user, suffix, DatatypeBool, v.Type)
		return def
	}
	return v.Bool
}

// Date は相対日付ポリシーを解決する。未設定・型不一致・復号不能の場合は
// defを返す。
func (r *Resolver) Date(ctx context.Context, user User, suffix string, def reldate.RelativeDate) reldate.RelativeDate {
	v, found, ok := r.lookup(ctx, user, suffix)
	if !ok || !found {
		return def
	}
	if v.Type != DatatypeRelativeDate {
		r.warnTypeMismatch(user, suffix, DatatypeRelativeDate, v.Type)
		return def
	}
	return v.Date
}

// Prefix はIPネットワークポリシーを解決する。
// 未設定・型不一致・復号不能の場合はfound=falseを返す。
func (r *Resolver) Prefix(ctx context.Context, user User, suffix string) (netip.Prefix, bool) {
	v, found, ok := r.lookup(ctx, user, suffix)
	if !ok || !found {
		return netip.Prefix{}, false
	}
	if v.Type != DatatypeIPNetwork {
		r.warnTypeMismatch(user, suffix, DatatypeIPNetwork, v.Type)
		return netip.Prefix{}, false
	}
	return v.Net, true
}

func (r *Resolver) lookup(ctx context.Context, user User, suffix string) (Value, bool, bool) {
	v, found, err := r.Resolve(ctx, user, suffix)
	if err != nil {
		slog.Error("policy resolution failed",
			"event_id", "POLICY_RESOLVE_ERR",
			"user", user.Name,
			"suffix", suffix,
			"error", err)
		return Value{}, false, false
	}
	return v, found, true
}

func (r *Resolver) warnTypeMismatch(user User, suffix string, want, got Datatype) {
	slog.Warn("policy datatype mismatch",
		"event_id", "POLICY_TYPE_MISMATCH",
		"user", user.Name,
		"suffix", suffix,
		"want", want.String(),
		"got", got.String())
}
