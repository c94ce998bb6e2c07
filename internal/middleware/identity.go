package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
)

const (
	// UserIDHeader carries the authenticated user id set by the identity
	// provider in front of this service.
	UserIDHeader = "X-User-ID"
	// UserRoleHeader carries the caller's role.
	UserRoleHeader = "X-User-Role"
	// IdentityKey is the context key for the resolved identity.
	IdentityKey = "identity"
)

// Identity resolves the caller identity from the trusted headers. Requests
// without both headers are rejected; authentication itself happens upstream.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		role := domain.Role(c.GetHeader(UserRoleHeader))

		if userID == "" || role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing identity headers"})
			return
		}
		if !domain.IsValidRole(role) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "role must be one of: contributor, reviewer, admin"})
			return
		}

		c.Set(IdentityKey, domain.Identity{UserID: userID, Role: role})
		c.Next()
	}
}

// GetIdentity retrieves the caller identity from the gin context.
func GetIdentity(c *gin.Context) (domain.Identity, bool) {
	if v, exists := c.Get(IdentityKey); exists {
		if identity, ok := v.(domain.Identity); ok {
			return identity, true
		}
	}
	return domain.Identity{}, false
}
