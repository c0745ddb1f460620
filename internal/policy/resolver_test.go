package policy

import (
	"context"
	"errors"
	"testing"
)

// fakeSource はテスト用のインメモリNodeSource。
type fakeSource struct {
	nodes map[string]Node // key: scope.String() + "/" + scopeKey + "/" + suffix
	err   error
}

func newFakeSource() *fakeSource {
	return &fakeSource{nodes: make(map[string]Node)}
}

func (f *fakeSource) set(scope Scope, scopeKey, suffix string, dt Datatype, raw string) {
	n := Node{Scope: scope, ScopeKey: scopeKey, Suffix: suffix, Datatype: dt, RawValue: raw}
	f.nodes[f.key(scope, scopeKey, suffix)] = n
}

func (f *fakeSource) key(scope Scope, scopeKey, suffix string) string {
	return scope.String() + "/" + scopeKey + "/" + suffix
}

func (f *fakeSource) Node(_ context.Context, scope Scope, scopeKey, suffix string) (*Node, error) {
	if f.err != nil {
		return nil, f.err
	}
	n, ok := f.nodes[f.key(scope, scopeKey, suffix)]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return &n, nil
}

func (f *fakeSource) Nodes(_ context.Context, scope Scope, scopeKey string) ([]Node, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []Node
	for _, n := range f.nodes {
		if n.Scope == scope && n.ScopeKey == scopeKey {
			out = append(out, n)
		}
	}
	return out, nil
}

var testUser = User{Name: "osis123456", Category: "student"}

func TestResolveScopePriority(t *testing.T) {
	src := newFakeSource()
	src.set(ScopeGlobal, "", SuffixDeviceLimit, DatatypeInt, "1")
	src.set(ScopeUserCategory, "student", SuffixDeviceLimit, DatatypeInt, "2")
	src.set(ScopeUser, "osis123456", SuffixDeviceLimit, DatatypeInt, "3")
	r := NewResolver(src)

	v, found, err := r.Resolve(context.Background(), testUser, SuffixDeviceLimit)
	if err != nil || !found {
		t.Fatalf("Resolve error = %v, found = %v", err, found)
	}
	if v.Int != 3 {
		t.Errorf("user scope should win: got %d, want 3", v.Int)
	}

	delete(src.nodes, src.key(ScopeUser, "osis123456", SuffixDeviceLimit))
	v, _, _ = r.Resolve(context.Background(), testUser, SuffixDeviceLimit)
	if v.Int != 2 {
		t.Errorf("category scope should win next: got %d, want 2", v.Int)
	}

	delete(src.nodes, src.key(ScopeUserCategory, "student", SuffixDeviceLimit))
	v, _, _ = r.Resolve(context.Background(), testUser, SuffixDeviceLimit)
	if v.Int != 1 {
		t.Errorf("global scope should win last: got %d, want 1", v.Int)
	}
}

func TestResolveNotFound(t *testing.T) {
	r := NewResolver(newFakeSource())
	v, found, err := r.Resolve(context.Background(), testUser, SuffixDeviceLimit)
	if err != nil {
		t.Fatalf("Resolve error = %v", err)
	}
	if found {
		t.Errorf("found = true, want false (value %+v)", v)
	}
}

func TestResolveEmptySuffix(t *testing.T) {
	r := NewResolver(newFakeSource())
	_, _, err := r.Resolve(context.Background(), testUser, "")
	if !errors.Is(err, ErrEmptySuffix) {
		t.Errorf("Resolve error = %v, want ErrEmptySuffix", err)
	}
}

func TestResolveDecodeError(t *testing.T) {
	src := newFakeSource()
	src.set(ScopeUser, "osis123456", SuffixDeviceLimit, DatatypeInt, "not-a-number")
	r := NewResolver(src)

	_, _, err := r.Resolve(context.Background(), testUser, SuffixDeviceLimit)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Resolve error = %v, want *DecodeError", err)
	}
	if decodeErr.Node.Suffix != SuffixDeviceLimit {
		t.Errorf("DecodeError.Node.Suffix = %q, want %q", decodeErr.Node.Suffix, SuffixDeviceLimit)
	}
}

func TestResolveAllOverride(t *testing.T) {
	src := newFakeSource()
	src.set(ScopeGlobal, "", SuffixDeviceLimit, DatatypeInt, "1")
	src.set(ScopeGlobal, "", SuffixBypassRateLimit, DatatypeBool, "false")
	src.set(ScopeUserCategory, "student", SuffixDeviceLimit, DatatypeInt, "2")
	src.set(ScopeUser, "osis123456", SuffixBypassRateLimit, DatatypeBool, "true")
	r := NewResolver(src)

	nodes, err := r.ResolveAll(context.Background(), testUser)
	if err != nil {
		t.Fatalf("ResolveAll error = %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("len(nodes) = %d, want 2", len(nodes))
	}
	// サフィックス昇順: bypassRateLimit, deviceLimit
	if nodes[0].Suffix != SuffixBypassRateLimit || nodes[0].Scope != ScopeUser {
		t.Errorf("nodes[0] = %+v, want user-scope bypassRateLimit", nodes[0])
	}
	if nodes[1].Suffix != SuffixDeviceLimit || nodes[1].Scope != ScopeUserCategory {
		t.Errorf("nodes[1] = %+v, want category-scope deviceLimit", nodes[1])
	}
}

func TestHelpersFallBackToDefault(t *testing.T) {
	src := newFakeSource()
	// 型不一致のノード
	src.set(ScopeUser, "osis123456", SuffixDeviceLimit, DatatypeString, "three")
	// 復号不能のノード
	src.set(ScopeUser, "osis123456", SuffixPasswordsPerHour, DatatypeInt, "oops")
	r := NewResolver(src)
	ctx := context.Background()

	if got := r.Int(ctx, testUser, SuffixDeviceLimit, 1); got != 1 {
		t.Errorf("Int on type mismatch = %d, want default 1", got)
	}
	if got := r.Int(ctx, testUser, SuffixPasswordsPerHour, 5); got != 5 {
		t.Errorf("Int on decode error = %d, want default 5", got)
	}
	if got := r.Bool(ctx, testUser, SuffixBypassRateLimit, false); got {
		t.Errorf("Bool on missing node = true, want default false")
	}
}

func TestPrefix(t *testing.T) {
	src := newFakeSource()
	src.set(ScopeGlobal, "", SuffixLoginIPRestriction, DatatypeIPNetwork, "10.0.0.0/8")
	r := NewResolver(src)

	p, found := r.Prefix(context.Background(), testUser, SuffixLoginIPRestriction)
	if !found {
		t.Fatal("Prefix found = false, want true")
	}
	if p.String() != "10.0.0.0/8" {
		t.Errorf("Prefix = %s, want 10.0.0.0/8", p)
	}
}
