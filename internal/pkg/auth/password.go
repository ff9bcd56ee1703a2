package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost matches the work factor the platform has always used for
// stored password hashes.
const BcryptCost = 10

// HashPassword returns a salted bcrypt hash of the plaintext password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
