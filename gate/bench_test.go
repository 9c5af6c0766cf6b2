package gate

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// BenchmarkValidator_Validate measures the cost of an admission decision.
func BenchmarkValidator_Validate(b *testing.B) {
	v := NewValidator(StaticSource(strings.Repeat("k", 43)))
	presented := strings.Repeat("k", 43)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Validate(presented)
	}
}

// BenchmarkValidator_MismatchPosition measures rejection cost as a function
// of where the presented credential first differs from the configured
// secret. The sub-benchmark timings should not vary with the position;
// comparing them verifies the constant-time property statistically.
func BenchmarkValidator_MismatchPosition(b *testing.B) {
	const length = 64
	secret := strings.Repeat("a", length)
	v := NewValidator(StaticSource(secret))

	for _, pos := range []int{0, 1, length / 4, length / 2, length - 1} {
		presented := secret[:pos] + "X" + secret[pos+1:]

		b.Run(fmt.Sprintf("first_diff_at_%d", pos), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if v.Validate(presented) {
					b.Fatal("mismatched credential validated")
				}
			}
		})
	}
}

// BenchmarkMiddleware_Wrap measures the full strip-validate-forward path.
func BenchmarkMiddleware_Wrap(b *testing.B) {
	m := NewMiddleware(NewValidator(StaticSource("bench-secret")))
	guarded := m.Wrap(func(_ context.Context, args map[string]any) (any, error) {
		return len(args), nil
	})

	ctx := context.Background()
	args := map[string]any{"api_key": "bench-secret", "symbol": "AAPL", "amount": 10}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = guarded(ctx, args)
	}
}

// BenchmarkGenerateSecret measures secret generation.
func BenchmarkGenerateSecret(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GenerateSecret()
	}
}
