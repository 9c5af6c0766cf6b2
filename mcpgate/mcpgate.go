// Package mcpgate applies the credential gate to MCP tool calls.
//
// MCP tool arguments arrive as a JSON object; the guard strips the reserved
// credential argument before the tool handler runs, so guarded trading tools
// never see or log the credential. Denials surface as gate.ErrUnauthorized
// by default, or as an in-band CallToolResult error for servers that prefer
// MCP's tool-error convention.
package mcpgate

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/marketops/tradegate/gate"
)

// ToolHandler executes one MCP tool call.
type ToolHandler func(ctx context.Context, params *mcp.CallToolParams) (*mcp.CallToolResult, error)

// Guard wraps MCP tool handlers with credential enforcement.
//
// A single Guard may wrap any number of tool handlers; it holds no state
// per wrapped handler and is safe for concurrent use.
type Guard struct {
	validator *gate.Validator
	key       string
	inBand    bool
}

// GuardOption configures a Guard.
type GuardOption func(*Guard)

// WithCredentialKey overrides the reserved argument key carrying the
// credential. Default: gate.DefaultCredentialKey.
func WithCredentialKey(key string) GuardOption {
	return func(g *Guard) {
		if key != "" {
			g.key = key
		}
	}
}

// WithInBandDenial makes the guard report denials as an MCP tool error
// result (IsError=true) instead of returning gate.ErrUnauthorized.
func WithInBandDenial() GuardOption {
	return func(g *Guard) {
		g.inBand = true
	}
}

// NewGuard creates a Guard delegating admission decisions to validator.
// A nil validator defaults to gate.NewValidator(nil).
func NewGuard(validator *gate.Validator, opts ...GuardOption) *Guard {
	if validator == nil {
		validator = gate.NewValidator(nil)
	}
	g := &Guard{
		validator: validator,
		key:       gate.DefaultCredentialKey,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Wrap wraps h so the tool call is admitted only when the credential
// argument passes validation. Arguments may arrive decoded
// (map[string]any) or raw (json.RawMessage, as the SDK hands them to
// low-level handlers); both forms are inspected. The credential is removed
// before h sees the arguments; when no credential key is present the call
// is forwarded untouched in its original representation. The caller's
// params are never mutated.
func (g *Guard) Wrap(h ToolHandler) ToolHandler {
	return func(ctx context.Context, params *mcp.CallToolParams) (*mcp.CallToolResult, error) {
		args := argumentsMap(params.Arguments)
		credential, rest := gate.StripCredential(args, g.key)

		if !g.validator.Validate(credential) {
			if g.inBand {
				return DenialResult(), nil
			}
			return nil, gate.ErrUnauthorized
		}

		if _, carried := args[g.key]; !carried {
			return h(ctx, params)
		}

		next := *params
		next.Arguments = rest
		return h(ctx, &next)
	}
}

// argumentsMap returns the tool arguments as a decoded JSON object, or nil
// when the arguments are not an object (no credential can be carried).
func argumentsMap(v any) map[string]any {
	switch args := v.(type) {
	case map[string]any:
		return args
	case json.RawMessage:
		var m map[string]any
		if err := json.Unmarshal(args, &m); err != nil {
			return nil
		}
		return m
	case []byte:
		var m map[string]any
		if err := json.Unmarshal(args, &m); err != nil {
			return nil
		}
		return m
	default:
		return nil
	}
}

// DenialResult returns the in-band MCP tool error for a denied call.
// The message is fixed and carries no secret material.
func DenialResult() *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: gate.ErrUnauthorized.Error()},
		},
	}
}

// WithCredential returns a copy of params whose arguments carry credential
// under key (gate.DefaultCredentialKey when key is empty). Use it on the
// client side before calling a guarded tool; params is not mutated.
func WithCredential(params *mcp.CallToolParams, key, credential string) *mcp.CallToolParams {
	if key == "" {
		key = gate.DefaultCredentialKey
	}

	args := argumentsMap(params.Arguments)
	withKey := make(map[string]any, len(args)+1)
	for k, v := range args {
		withKey[k] = v
	}
	withKey[key] = credential

	next := *params
	next.Arguments = withKey
	return &next
}
