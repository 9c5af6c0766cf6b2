// Package secret provides a small, dependency-light secret resolution layer
// for gate configuration.
//
// It supports:
//   - Strict environment expansion (see ExpandEnvStrict)
//   - Pluggable secret providers (see Provider + Registry)
//   - Resolving secret references in configuration values (see Resolver)
//
// References use the prefix "secretref:":
//   - Full value:  secretref:env:TRADEGATE_API_KEY
//   - Inline use:  Bearer secretref:env:TRADEGATE_API_KEY
//
// The resolver never caches resolved values; a configured secret is read
// fresh on every resolution so the gate's read-at-call-time contract holds.
// Concurrent resolutions of the same reference are deduplicated in flight.
package secret
