package secret

import (
	"context"
	"fmt"
	"os"
	"regexp"
)

var envRefPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// EnvProvider resolves references as environment variable names.
// The ref "TRADEGATE_API_KEY" resolves to $TRADEGATE_API_KEY.
type EnvProvider struct{}

// NewEnvProvider creates an environment-variable provider.
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{}
}

// Name returns "env".
func (p *EnvProvider) Name() string {
	return "env"
}

// Resolve returns the value of the environment variable named by ref.
// A missing variable is an error; an empty value is returned as-is and
// left to the resolver's strict-mode policy.
func (p *EnvProvider) Resolve(_ context.Context, ref string) (string, error) {
	if !envRefPattern.MatchString(ref) {
		return "", fmt.Errorf("invalid environment variable name %q", ref)
	}
	value, ok := os.LookupEnv(ref)
	if !ok {
		return "", fmt.Errorf("environment variable %q is not set", ref)
	}
	return value, nil
}

// Close is a no-op.
func (p *EnvProvider) Close() error {
	return nil
}

// Ensure EnvProvider implements Provider
var _ Provider = (*EnvProvider)(nil)
