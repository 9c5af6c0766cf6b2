package gate

import "os"

// DefaultEnvVar is the environment variable holding the configured secret.
const DefaultEnvVar = "TRADEGATE_API_KEY"

// SecretSource supplies the configured shared secret.
//
// Contract:
//   - Concurrency: implementations must be safe for concurrent use.
//   - Secret returns the empty string when no secret is configured, which
//     disables enforcement (open mode).
//   - Implementations must not log or persist the value.
type SecretSource interface {
	Secret() string
}

// EnvSource reads the secret from an environment variable on every call,
// so late configuration in tests and tooling is picked up without caching.
type EnvSource struct {
	// Name is the environment variable to read.
	// Default: DefaultEnvVar
	Name string
}

// Secret returns the current value of the environment variable.
func (s EnvSource) Secret() string {
	name := s.Name
	if name == "" {
		name = DefaultEnvVar
	}
	return os.Getenv(name)
}

// StaticSource holds a fixed secret. It is the explicit, immutable
// configuration form; prefer it over EnvSource when the secret is resolved
// once at startup.
type StaticSource string

// Secret returns the fixed value.
func (s StaticSource) Secret() string {
	return string(s)
}

// Ensure sources implement SecretSource
var (
	_ SecretSource = EnvSource{}
	_ SecretSource = StaticSource("")
)
