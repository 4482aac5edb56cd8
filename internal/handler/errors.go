package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/domain"
	"github.com/IrutingaboRaissa/amasimbi-sub000/pkg/jwt"
	"github.com/IrutingaboRaissa/amasimbi-sub000/pkg/logger"
)

var log = logger.New("info")

// respondError maps sentinel errors to HTTP statuses. Anything unexpected is
// logged with full detail server-side and reported to the client generically.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": domain.ErrEmailTaken.Error()})
	case errors.Is(err, domain.ErrAlreadyLiked):
		c.JSON(http.StatusConflict, gin.H{"error": domain.ErrAlreadyLiked.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		// Same body for unknown email and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrInvalidCredentials.Error()})
	case errors.Is(err, jwt.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
	case errors.Is(err, jwt.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not own this resource"})
	case errors.Is(err, domain.ErrUnderage), errors.Is(err, domain.ErrConsentRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
	default:
		log.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
