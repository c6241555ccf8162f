package pkg

import "golang.org/x/crypto/bcrypt"

const passwordHashCost = 12

// HashPassword returns the bcrypt hash of a secret (API tokens included).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	return string(hash), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
