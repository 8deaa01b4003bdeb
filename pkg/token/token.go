package token

import (
	"crypto/rand"
	"encoding/base64"
)

// Generate returns a crypto-secure random string of length n.
// The string uses the base64url alphabet.
func Generate(n int) (string, error) {
	// base64 inflates by a third, so read enough raw bytes to cover n
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b)[0:n], nil
}
