package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
	"github.com/pitelleadami/ChirinIvatan/internal/middleware"
)

// statusForKind maps a domain error kind to an HTTP status code.
func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindPermissionDenied:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInvalidState, domain.KindDuplicateVote:
		return http.StatusConflict
	case domain.KindStorageFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the JSON error body for a failed service call. Domain
// errors surface their kind and detail; anything else becomes an opaque 500.
func respondError(c *gin.Context, err error) {
	kind := domain.KindOf(err)
	status := statusForKind(kind)

	if kind == "" || status >= http.StatusInternalServerError {
		log.Printf("[request_id=%s] %s %s failed: %v", middleware.GetRequestID(c), c.Request.Method, c.FullPath(), err)
	}

	if kind == "" {
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(status, gin.H{"error": domain.DetailOf(err), "kind": string(kind)})
}

// callerIdentity resolves the authenticated identity, aborting with 401 when
// the identity middleware did not run on this route.
func callerIdentity(c *gin.Context) (domain.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return domain.Identity{}, false
	}
	return identity, true
}
