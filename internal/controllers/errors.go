package controllers

import (
	"net/http"

	"github.com/brmartin/shortly/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func statusFromError(err error) int {
	switch {
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// renderError отдает наружу kind и сообщение. Причины и стектрейсы
// остаются в серверных логах.
func renderError(ctx *gin.Context, err error) {
	ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
}
