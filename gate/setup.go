package gate

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// secretBytes is the entropy of generated secrets. 32 bytes encodes to a
// 43-character URL-safe string, above the recommended 32-character floor.
const secretBytes = 32

// GenerateSecret returns a new cryptographically random, URL-safe secret
// suitable for use as the configured gate secret.
func GenerateSecret() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("gate: generate secret: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// SetupHelp returns setup instructions for enabling gate authentication.
// The text is informational only and is not part of the enforcement
// contract.
func SetupHelp() string {
	return `Gate authentication setup

To enable authentication for guarded trading operations:

1. Generate a secure secret (cryptographically random, 32+ characters):

     gatekey generate

2. Export it in the server environment:

     export ` + DefaultEnvVar + `=<generated-secret>

3. Include the credential in tool calls via the reserved argument:

     buy(symbol="AAPL", amount=10, api_key="<generated-secret>")

If ` + DefaultEnvVar + ` is unset the gate runs in open mode and admits
every call. Open mode is for development only.

Security notes:
- Never commit the secret to version control.
- Restrict permissions on files that hold it (chmod 600 on Unix).
- Rotate the secret by restarting the process with a new value.
`
}
