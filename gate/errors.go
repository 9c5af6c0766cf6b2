package gate

import "errors"

// ErrUnauthorized is returned by the enforcement middleware when credential
// validation fails. The message is fixed and never echoes the presented or
// configured value. Match with errors.Is to distinguish admission failures
// from errors raised by the guarded operation itself.
var ErrUnauthorized = errors.New(
	"gate: invalid or missing API key; pass a valid api_key argument or configure the expected secret")
