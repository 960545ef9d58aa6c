// Package hash provides password hashing for stored user credentials.
//
// Stored passwords are hashed with bcrypt, so the cleartext column the
// redaction layer scrubs from log output never needs to exist at rest
// either. bcrypt embeds a per-password salt in its output; two hashes of
// the same password differ, and validation goes through IsValid rather
// than comparison.
package hash

import "golang.org/x/crypto/bcrypt"

// Password returns a salted bcrypt hash of the given password.
// The default cost is used; at the time of writing that is 10 rounds,
// which keeps seeding a demo database fast while remaining a realistic
// storage format.
func Password(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// IsValid reports whether password matches the given bcrypt hash.
func IsValid(hashed []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hashed, []byte(password)) == nil
}
