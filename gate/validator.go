package gate

import "crypto/subtle"

// Mode describes whether the gate is enforcing credential checks.
type Mode int

const (
	// ModeOpen means no secret is configured; every call is admitted.
	ModeOpen Mode = iota

	// ModeEnforced means a secret is configured; calls must present it.
	ModeEnforced
)

func (m Mode) String() string {
	switch m {
	case ModeOpen:
		return "open"
	case ModeEnforced:
		return "enforced"
	default:
		return "unknown"
	}
}

// Validator decides whether a presented credential may invoke guarded
// operations.
//
// Contract:
//   - Concurrency: safe for concurrent use.
//   - Validate is a pure function of the configured secret and the
//     presented credential; it never errors and has no side effects.
//   - The configured secret is read from the source on every call.
type Validator struct {
	source SecretSource
}

// NewValidator creates a validator reading the configured secret from
// source. A nil source defaults to EnvSource{Name: DefaultEnvVar}.
func NewValidator(source SecretSource) *Validator {
	if source == nil {
		source = EnvSource{}
	}
	return &Validator{source: source}
}

// Validate reports whether presented is admissible.
//
// If no secret is configured, every credential (including none) is admitted:
// the gate runs in open mode for development. If a secret is configured,
// presented must be non-empty and byte-equal to it, checked in constant
// time to resist timing side channels.
func (v *Validator) Validate(presented string) bool {
	expected := v.source.Secret()
	if expected == "" {
		return true
	}
	if presented == "" {
		return false
	}
	return ConstantTimeCompare(presented, expected)
}

// Mode reports the current enforcement mode, read from the source at call
// time like Validate.
func (v *Validator) Mode() Mode {
	if v.source.Secret() == "" {
		return ModeOpen
	}
	return ModeEnforced
}

// ConstantTimeCompare performs constant-time comparison of two strings.
func ConstantTimeCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
