package util

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor. The hashing cost is the intended
// rate-limit on brute-force attempts.
const hashCost = 10

// HashPassword hashes the given plain password using bcrypt with a random salt.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a stored bcrypt hash with a plain password.
// A mismatch returns bcrypt.ErrMismatchedHashAndPassword; a malformed stored
// hash returns a different error.
func CheckPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
