package secret

import (
	"context"
	"testing"
)

func TestDefaultRegistry_EnvProviderBuiltin(t *testing.T) {
	names := DefaultRegistry.Names()
	found := false
	for _, n := range names {
		if n == "env" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Names() = %v, want env registered", names)
	}

	p, err := DefaultRegistry.Create("env", nil)
	if err != nil {
		t.Fatalf("Create(env) error = %v", err)
	}
	if p.Name() != "env" {
		t.Fatalf("provider name = %q, want env", p.Name())
	}
}

func TestRegistry_ResolverFromNames(t *testing.T) {
	t.Setenv("TRADEGATE_REGISTRY_TEST_KEY", "hunter2")

	r, err := DefaultRegistry.Resolver(true, "env")
	if err != nil {
		t.Fatalf("Resolver() error = %v", err)
	}

	got, err := r.ResolveValue(context.Background(), "secretref:env:TRADEGATE_REGISTRY_TEST_KEY")
	if err != nil {
		t.Fatalf("ResolveValue() error = %v", err)
	}
	if got != "hunter2" {
		t.Fatalf("ResolveValue() = %q, want %q", got, "hunter2")
	}
}

func TestRegistry_ResolverUnknownName(t *testing.T) {
	if _, err := DefaultRegistry.Resolver(true, "vault"); err == nil {
		t.Fatalf("expected error for unregistered provider")
	}
}

func TestRegistry_RegisterRejectsDuplicates(t *testing.T) {
	reg := NewRegistry()
	factory := func(map[string]any) (Provider, error) {
		return &stubProvider{name: "vault"}, nil
	}

	if err := reg.Register("vault", factory); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := reg.Register("vault", factory); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestRegistry_RegisterRejectsEmptyName(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("  ", func(map[string]any) (Provider, error) {
		return &stubProvider{name: "vault"}, nil
	}); err == nil {
		t.Fatalf("expected error for blank name")
	}
}

func TestRegistry_CreateUnknown(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Create("missing", nil); err == nil {
		t.Fatalf("expected error")
	}
}
