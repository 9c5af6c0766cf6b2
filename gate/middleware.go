package gate

import "context"

// DefaultCredentialKey is the reserved argument key carrying the credential.
const DefaultCredentialKey = "api_key"

// ExecuteFunc is the signature for guarded operation execution.
// This is the standard function signature that Middleware wraps.
type ExecuteFunc func(ctx context.Context, args map[string]any) (any, error)

// Option configures a Middleware.
type Option func(*Middleware)

// WithCredentialKey overrides the reserved argument key carrying the
// credential. Default: DefaultCredentialKey.
func WithCredentialKey(key string) Option {
	return func(m *Middleware) {
		if key != "" {
			m.key = key
		}
	}
}

// Middleware wraps guarded operations with credential enforcement.
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe ExecuteFunc.
//   - State: the middleware is stateless and may guard any number of
//     distinct operations; no state is shared between them.
//   - Errors: on denial the operation is never invoked and ErrUnauthorized
//     is returned. On admission the operation's result and error propagate
//     unchanged.
//   - Ownership: the caller's argument map is not mutated; a copy without
//     the credential key is forwarded.
type Middleware struct {
	validator *Validator
	key       string
}

// NewMiddleware creates a Middleware delegating admission decisions to
// validator. A nil validator defaults to NewValidator(nil).
func NewMiddleware(validator *Validator, opts ...Option) *Middleware {
	if validator == nil {
		validator = NewValidator(nil)
	}
	m := &Middleware{
		validator: validator,
		key:       DefaultCredentialKey,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CredentialKey returns the reserved argument key this middleware strips.
func (m *Middleware) CredentialKey() string {
	return m.key
}

// Wrap wraps fn so the call is admitted only when the credential argument
// passes validation. The credential is removed before fn sees the arguments.
func (m *Middleware) Wrap(fn ExecuteFunc) ExecuteFunc {
	return func(ctx context.Context, args map[string]any) (any, error) {
		credential, rest := StripCredential(args, m.key)

		if !m.validator.Validate(credential) {
			return nil, ErrUnauthorized
		}

		return fn(ctx, rest)
	}
}

// StripCredential extracts the credential under key from args and returns
// it together with a copy of args without that key. A non-string value
// under key is treated as an absent credential; args is never mutated.
func StripCredential(args map[string]any, key string) (credential string, rest map[string]any) {
	if args == nil {
		return "", nil
	}

	raw, present := args[key]
	if !present {
		return "", args
	}

	credential, _ = raw.(string)

	rest = make(map[string]any, len(args)-1)
	for k, v := range args {
		if k == key {
			continue
		}
		rest[k] = v
	}
	return credential, rest
}
