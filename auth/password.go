package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the application-level password digest: lowercase hex of the
// SHA-256 hash, 64 characters. It is stored on the user profile in addition
// to the identity service's own credential and is never used to authenticate
// against the identity service itself.
func Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
