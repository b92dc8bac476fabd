package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the adaptive work factor used for all stored hashes.
const bcryptCost = 10

// HashPassword derives a salted bcrypt hash from the plaintext. Identical
// plaintexts produce different hashes across calls.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash, using the
// salt embedded in the hash and a constant-time comparison. A mismatch is
// false, not an error; err is reserved for malformed stored hashes.
func CheckPassword(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}
	return false, fmt.Errorf("checking password: %w", err)
}
