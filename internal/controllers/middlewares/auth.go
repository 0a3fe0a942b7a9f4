package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/brmartin/shortly/internal/tokens"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const (
	CurrentUserIDKey    = "currentUserID"
	CurrentUserEmailKey = "currentUserEmail"
)

// RequireAuth пропускает только запросы с валидным bearer токеном.
// Личность вызывающего кладется в контекст gin.
func RequireAuth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := claimsFromRequest(c, jwtSecret)
		if err != nil {
			_ = c.Error(fmt.Errorf("auth middleware: %w", err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		setCaller(c, claims)
		c.Next()
	}
}

// OptionalAuth извлекает личность вызывающего если токен есть и валиден.
// Запрос без токена (или с негодным токеном) считается анонимным.
func OptionalAuth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := claimsFromRequest(c, jwtSecret)
		if err == nil {
			setCaller(c, claims)
		}
		c.Next()
	}
}

// CurrentUserID возвращает id пользователя из контекста запроса.
func CurrentUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(CurrentUserIDKey)
	if !ok {
		return "", false
	}
	id, castOK := v.(string)
	return id, castOK && id != ""
}

func setCaller(c *gin.Context, claims *tokens.AccessClaims) {
	c.Set(CurrentUserIDKey, claims.Subject)
	c.Set(CurrentUserEmailKey, claims.Email)
}

func claimsFromRequest(c *gin.Context, jwtSecret []byte) (*tokens.AccessClaims, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, errors.New("missing authorization header")
	}
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return nil, errors.New("malformed authorization header")
	}
	claims, err := tokens.ValidateAccessJWT(tokenString, jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("auth middleware: %w", err)
	}
	return claims, nil
}
