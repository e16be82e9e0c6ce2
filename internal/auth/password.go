package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is deliberately above the library default. Hashing takes
// hundreds of milliseconds at this cost; callers must not run it inside an
// open database transaction.
const bcryptCost = 12

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
