// Package gate provides shared-secret admission control for trading tool
// operations.
//
// A Validator compares a caller-supplied credential against one configured
// secret using constant-time comparison. A Middleware wraps any guarded
// operation, strips the credential from the call arguments, and either
// forwards the call or denies it with ErrUnauthorized. The package is
// protocol-agnostic and can be used with any transport layer.
//
// When no secret is configured the gate runs in open mode and admits every
// call. This is intentional development-mode behavior; production
// deployments should set the secret (see SetupHelp) and may fail closed at
// startup via the config package's require_secret option.
package gate
