// Package password hashes and verifies user passwords with bcrypt. The
// encoded hash embeds its own salt and cost factor, so the cost can be raised
// later without a schema migration.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when an empty password is offered for hashing.
var ErrEmptyPassword = errors.New("password cannot be empty")

// Hash derives a salted bcrypt hash from a plain-text password. A fresh salt
// is generated on every call, so hashing the same password twice yields two
// different encodings.
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored hash. It returns false
// for empty or malformed input and never an error; bcrypt's comparison is
// constant-time with respect to the digest.
func Verify(password, hashed string) bool {
	if password == "" || hashed == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
