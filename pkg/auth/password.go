package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// saltBytes is the salt length; 16 bytes render as 32 hex characters
	saltBytes = 16

	// defaultIterations is the PBKDF2 round count. Each login attempt pays
	// this CPU cost, which is the point: offline brute force pays it per
	// guess.
	defaultIterations = 100000

	// hashKeyLen is the derived key length in bytes
	hashKeyLen = 32
)

// PBKDF2Hasher hashes passwords with PBKDF2-HMAC-SHA256. It implements
// storage.PasswordHasher.
type PBKDF2Hasher struct {
	iterations int
}

// NewPasswordHasher creates a hasher with the default iteration count
func NewPasswordHasher() *PBKDF2Hasher {
	return &PBKDF2Hasher{iterations: defaultIterations}
}

// NewPasswordHasherWithIterations creates a hasher with a custom iteration
// count. Use a low count in tests to avoid paying the full stretching cost
// per case; never in production.
func NewPasswordHasherWithIterations(iterations int) *PBKDF2Hasher {
	return &PBKDF2Hasher{iterations: iterations}
}

// GenerateSalt produces a new random salt as a 32-character hex string.
// An entropy source failure here is unrecoverable; callers should treat it
// as fatal rather than retry.
func (h *PBKDF2Hasher) GenerateSalt() (string, error) {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashPassword derives a hex-encoded hash from password and salt. The
// function is pure: identical inputs always produce an identical hash.
func (h *PBKDF2Hasher) HashPassword(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), h.iterations, hashKeyLen, sha256.New)
	return hex.EncodeToString(key)
}

// VerifyPassword checks a password against a stored salt and hash using a
// constant-time comparison, so response timing never reveals how much of the
// hash matched.
func (h *PBKDF2Hasher) VerifyPassword(password, salt, expectedHash string) bool {
	computed := h.HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(expectedHash)) == 1
}
