package utils

import "golang.org/x/crypto/bcrypt"

// Hash generates a bcrypt hash for the given password.
func Hash(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// VerifyPassword compares a plaintext password against a bcrypt hash.
func VerifyPassword(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}
