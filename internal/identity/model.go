package identity

import "time"

// User is a registered account. PasswordHash only ever comes out of the
// password package; the plaintext is never stored or logged.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Registration carries the already-validated input for creating an account.
type Registration struct {
	Username string
	Email    string
	Password string
}
