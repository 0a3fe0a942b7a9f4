package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"

	"github.com/brmartin/shortly/internal/controllers/middlewares"
	"github.com/brmartin/shortly/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// hostnameRegex в соответствии с `RFC 1123` за исключением - исключает корневые доменные имена (без зоны).
var hostnameRegex = regexp.MustCompile(`^([a-zA-Z0-9](-?[a-zA-Z0-9])*\.)+([a-zA-Z0-9](-?[a-zA-Z0-9])*)$`)

type shortenRequest struct {
	OriginalURL string `json:"originalUrl"`
}

type ShortURLController struct {
	urlService URLShortener
	baseURL    *url.URL
}

func NewShortURLController(urlService URLShortener, baseURL *url.URL) *ShortURLController {
	return &ShortURLController{
		urlService: urlService,
		baseURL:    baseURL,
	}
}

// CreateShortURL создает короткую ссылку. Токен не обязателен:
// без него ссылка создается анонимной.
func (s *ShortURLController) CreateShortURL(ctx *gin.Context) {
	var req shortenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "originalUrl is required"})
		return
	}

	parsedURL, parseErr := validateURL(req.OriginalURL)
	if parseErr != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": parseErr.Error()})
		return
	}

	var userID *string
	if id, ok := middlewares.CurrentUserID(ctx); ok {
		userID = &id
	}

	sURL, createErr := s.urlService.Shorten(ctx.Request.Context(), parsedURL.String(), userID)
	if createErr != nil {
		renderError(ctx, createErr)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"shortUrl": s.getShortURL(ctx.Request, sURL.ShortCode)})
}

func (s *ShortURLController) Redirect(ctx *gin.Context) {
	shortCode := ctx.Param("shortCode")

	if len(shortCode) < models.ShortCodeLength || len(shortCode) > models.ShortCodeMaxLength {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "URL not found or deleted"})
		return
	}

	originalURL, err := s.urlService.RedirectToOriginal(ctx.Request.Context(), shortCode)
	if err != nil {
		renderError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, originalURL)
}

// ListByOwner возвращает все неудаленные ссылки вызывающего.
func (s *ShortURLController) ListByOwner(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		// RequireAuth обязан был положить личность в контекст
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	urls, err := s.urlService.FindByOwner(ctx.Request.Context(), userID)
	if err != nil {
		renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, urls)
}

func (s *ShortURLController) Update(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req shortenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "originalUrl is required"})
		return
	}
	parsedURL, parseErr := validateURL(req.OriginalURL)
	if parseErr != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": parseErr.Error()})
		return
	}

	updated, err := s.urlService.Update(ctx.Request.Context(), ctx.Param("id"), parsedURL.String(), userID)
	if err != nil {
		renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

func (s *ShortURLController) Delete(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if _, err := s.urlService.Delete(ctx.Request.Context(), ctx.Param("id"), userID); err != nil {
		renderError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// getShortURL вспомогательный метод который создает короткую ссылку.
func (s *ShortURLController) getShortURL(r *http.Request, shortCode string) string {
	var scheme = "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if s.baseURL == nil {
		return fmt.Sprintf("%s://%s/%s", scheme, r.Host, shortCode)
	}
	return fmt.Sprintf("%s/%s", s.baseURL, shortCode)
}

// validateURL проверяет, является ли строка корректным URL.
func validateURL(rawURL string) (*url.URL, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)

	if err != nil {
		return nil, errors.New("invalid URL format")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, errors.New("URL must have http or https scheme")
	}

	if parsedURL.Host == "" {
		return nil, errors.New("URL must have a host")
	}

	if parsedURL.Hostname() != "localhost" && !hostnameRegex.MatchString(parsedURL.Hostname()) {
		return nil, errors.New("invalid hostname")
	}

	return parsedURL, nil
}
