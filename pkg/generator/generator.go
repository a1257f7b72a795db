package generator

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// 32 random bytes, well above the 128-bit floor for unguessable tokens.
const TokenBytes = 32

// NewToken returns a fresh opaque bearer token. The raw value is handed to
// the client exactly once; storage only ever sees HashToken of it.
func NewToken() (string, error) {
	buf := make([]byte, TokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashToken maps a raw token to the form kept in storage.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
