package auth

import (
	"crypto/rand"   // secure random number generation
	"crypto/sha256" // SHA-256 hashing for reset tokens
	"encoding/hex"  // hex encoding for tokens and digests
	"time"
)

// ResetToken is a one-time password-reset credential. Raw is the opaque
// string mailed to the user; only its SHA-256 hash is persisted, so a stolen
// database dump cannot be replayed against the reset endpoint.
type ResetToken struct {
	Raw string    // raw token string included in the reset link
	Exp time.Time // UTC expiration time
}

// NewResetToken returns a cryptographically random reset token valid for
// ttlMin minutes. Issuing a new token for a user replaces any previous one,
// keeping exactly one active reset token per user.
func NewResetToken(ttlMin int) (ResetToken, error) {
	raw, err := randomHex(20) // 20 bytes -> 40 hex chars
	if err != nil {
		return ResetToken{}, err
	}
	return ResetToken{
		Raw: raw,
		Exp: time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute),
	}, nil
}

// HashResetRaw returns the SHA-256 hash of the raw reset token as a hex
// string. This is the value stored on the user row.
func HashResetRaw(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
