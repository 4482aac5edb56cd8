package util

import (
	"github.com/gin-gonic/gin"
)

// identityKey is the gin context key under which the authenticated caller is stored.
const identityKey = "auth.identity"

// Identity is the authenticated caller attached to the request context by the
// auth middleware. It never carries the password hash.
type Identity struct {
	ID       uint
	Email    string
	Username string
}

// SetIdentity attaches the authenticated caller to the gin context.
func SetIdentity(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
}

// CurrentUser returns the authenticated caller, if any.
func CurrentUser(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// CurrentUserID returns the authenticated caller's user ID, if any.
func CurrentUserID(c *gin.Context) (uint, bool) {
	id, ok := CurrentUser(c)
	if !ok {
		return 0, false
	}
	return id.ID, true
}
