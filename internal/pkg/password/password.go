package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordTooLong = errors.New("password exceeds maximum length")
	ErrHashingFailed   = errors.New("password hashing failed")
)

// bcrypt silently truncates beyond 72 bytes
const maxPasswordLength = 72

func HashPassword(plain string) (string, error) {
	if len(plain) > maxPasswordLength {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hash), nil
}

func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
