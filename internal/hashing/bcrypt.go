package hashing

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher реализация Hasher поверх bcrypt.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(digest), nil
}

// Compare сверяет пароль с дайджестом. Сравнение внутри bcrypt
// выполняется за константное время.
func (h *BcryptHasher) Compare(digest string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
