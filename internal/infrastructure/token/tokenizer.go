// Package token derives pseudonymous identifiers for external exposure.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Length is the number of hex characters kept from the keyed hash.
const Length = 24

// Tokenizer derives stable pseudonymous tokens from addresses using an
// HMAC-SHA256 keyed by a configured secret. The token, never the raw
// address, is what read-only and clearing interfaces see.
type Tokenizer struct {
	secret []byte
}

// New creates a Tokenizer for the given secret.
func New(secret string) *Tokenizer {
	return &Tokenizer{secret: []byte(secret)}
}

// Tokenize returns the token for an address. Deterministic: the same
// address and secret always produce the same token.
func (t *Tokenizer) Tokenize(address string) string {
	mac := hmac.New(sha256.New, t.secret)
	mac.Write([]byte(address))
	return hex.EncodeToString(mac.Sum(nil))[:Length]
}
