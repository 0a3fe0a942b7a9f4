// Package hashing инкапсулирует одностороннее хеширование паролей.
package hashing

// Hasher хеширует пароли и сверяет пароль с дайджестом.
type Hasher interface {
	// Hash возвращает соленый дайджест пароля.
	Hash(password string) (string, error)
	// Compare сверяет пароль с дайджестом.
	Compare(digest string, password string) bool
}
