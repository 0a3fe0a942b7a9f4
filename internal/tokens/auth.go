package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrTokenExpired истек срок действия токена.
var ErrTokenExpired = errors.New("token expired")

// AccessClaims представляет данные JWT токена пользователя.
// Subject несет id пользователя.
type AccessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// GenerateAccessJWT создает JWT токен пользователя.
//
// Параметры:
//   - userID: идентификатор пользователя (попадает в subject)
//   - email: email пользователя
//   - expire: срок действия токена
//   - key: ключ для подписи токена
//
// Возвращает:
//   - string: сгенерированный JWT токен
//   - error: ошибка генерации токена
func GenerateAccessJWT(userID string, email string, expire time.Duration, key []byte) (string, error) {
	accessClaims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
		Email: email,
	}
	token, err := generateJWT(accessClaims, key)
	if err != nil {
		return "", fmt.Errorf("generating access jwt token: %w", err)
	}
	return token, nil
}

// ValidateAccessJWT проверяет JWT токен пользователя.
//
// Параметры:
//   - tokenString: JWT токен в виде строки
//   - key: ключ для проверки подписи
//
// Возвращает:
//   - *AccessClaims: данные проверенного токена
//   - error: ошибка проверки (ErrTokenExpired если истек срок действия)
func ValidateAccessJWT(tokenString string, key []byte) (*AccessClaims, error) {
	token, err := validateJWT(tokenString, new(AccessClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating access jwt token: %w", err)
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %w", err)
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}

	return token, nil
}
