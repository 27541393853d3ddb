package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// newRefreshToken returns a 256-bit random opaque value, hex encoded.
func newRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
