package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/domain"
	"github.com/IrutingaboRaissa/amasimbi-sub000/pkg/jwt"
	"github.com/IrutingaboRaissa/amasimbi-sub000/pkg/util"
)

// RequireAuth validates the bearer token on the request, resolves it to a
// live user record, and attaches the caller identity to the context. Every
// failure mode is a 401; the sub-cases carry distinct messages so clients can
// show "session expired" separately.
func RequireAuth(tokenManager jwt.TokenManager, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := resolveIdentity(c, tokenManager, users)
		if !ok {
			return // resolveIdentity already aborted
		}
		util.SetIdentity(c, identity)
		c.Next()
	}
}

// OptionalAuth attaches the caller identity when a bearer token is present
// and valid, and lets the request through anonymously when the Authorization
// header is absent. A header that is present but invalid still fails: a
// client that sends credentials gets told when they are bad.
func OptionalAuth(tokenManager jwt.TokenManager, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		identity, ok := resolveIdentity(c, tokenManager, users)
		if !ok {
			return
		}
		util.SetIdentity(c, identity)
		c.Next()
	}
}

func resolveIdentity(c *gin.Context, tokenManager jwt.TokenManager, users domain.UserRepository) (util.Identity, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
		return util.Identity{}, false
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

	claims, err := tokenManager.ValidateAccessToken(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access token expired"})
			return util.Identity{}, false
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid access token"})
		return util.Identity{}, false
	}

	// A valid token may outlive its account. The user row is authoritative
	// for identity fields; the claim's email is never trusted over it.
	user, err := users.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		case errors.Is(err, context.DeadlineExceeded):
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return util.Identity{}, false
	}

	return util.Identity{ID: user.ID, Email: user.Email, Username: user.Username}, true
}
