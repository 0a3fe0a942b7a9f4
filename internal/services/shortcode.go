package services

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// shortCodeAlphabet алфавит короткого кода: только буквы и цифры.
const shortCodeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// maxShortCodeAttempts предел попыток генерации на каждую длину кода.
const maxShortCodeAttempts = 4

func generateShortCode(length int) (string, error) {
	code, err := gonanoid.Generate(shortCodeAlphabet, length)
	if err != nil {
		return "", fmt.Errorf("generating short code: %w", err)
	}
	return code, nil
}
