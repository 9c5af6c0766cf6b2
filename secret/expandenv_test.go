package secret

import (
	"strings"
	"testing"
)

func TestExpandEnvStrict_ExpandsConfiguredVars(t *testing.T) {
	t.Setenv("TRADEGATE_EXPAND_TEST_BROKER", "alpaca")
	t.Setenv("TRADEGATE_EXPAND_TEST_KEY", "sk_live_abc123")

	out, err := ExpandEnvStrict("${TRADEGATE_EXPAND_TEST_BROKER}:${TRADEGATE_EXPAND_TEST_KEY}")
	if err != nil {
		t.Fatalf("ExpandEnvStrict() error = %v", err)
	}
	if out != "alpaca:sk_live_abc123" {
		t.Fatalf("ExpandEnvStrict() = %q", out)
	}
}

func TestExpandEnvStrict_MissingVarErrors(t *testing.T) {
	t.Setenv("TRADEGATE_EXPAND_TEST_PRESENT", "ok")

	_, err := ExpandEnvStrict("a=${TRADEGATE_EXPAND_TEST_PRESENT} b=${TRADEGATE_EXPAND_TEST_MISSING}")
	if err == nil {
		t.Fatalf("expected error for unset variable")
	}
	if !strings.Contains(err.Error(), "TRADEGATE_EXPAND_TEST_MISSING") {
		t.Fatalf("expected missing var name in error, got: %v", err)
	}
}

func TestExpandEnvStrict_DollarEscape(t *testing.T) {
	t.Setenv("TRADEGATE_EXPAND_TEST_X", "y")

	out, err := ExpandEnvStrict("$$${TRADEGATE_EXPAND_TEST_X}")
	if err != nil {
		t.Fatalf("ExpandEnvStrict() error = %v", err)
	}
	if out != "$y" {
		t.Fatalf("ExpandEnvStrict() = %q, want %q", out, "$y")
	}
}

func TestExpandEnvStrict_NoVarsPassthrough(t *testing.T) {
	out, err := ExpandEnvStrict("plain literal value")
	if err != nil {
		t.Fatalf("ExpandEnvStrict() error = %v", err)
	}
	if out != "plain literal value" {
		t.Fatalf("ExpandEnvStrict() = %q", out)
	}
}
