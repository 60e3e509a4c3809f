package i

import (
	"time"
)

// Tokenizer signs and checks the bearer tokens guarding protected routes.
type Tokenizer interface {
	// Generate creates a token with the given claims that expires after expTime.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode validates a token, including its issuer, and returns its claims.
	Decode(token string) (map[string]interface{}, error)

	// Issuer returns the issuer claim stamped on generated tokens.
	Issuer() string
}
