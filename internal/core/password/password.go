// Package password wraps bcrypt hashing and verification for stored
// credentials. The salt is embedded in the hash, so no extra state is kept.
package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a one-way bcrypt hash with a per-hash random salt.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Matches reports whether plaintext matches the stored hash. A malformed
// stored hash yields false, never an error; callers surface a single generic
// invalid-credentials message either way.
func Matches(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
