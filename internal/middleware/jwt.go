package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coursebay/coursebay-backend/internal/response"
	"github.com/coursebay/coursebay-backend/internal/service"
)

// ContextKeySubjectID is the Gin context key for the authenticated
// account ID.
const ContextKeySubjectID = "subject_id"

// RequireAdminToken validates an admin-namespace JWT from the
// Authorization header. A user token fails here: it is signed with the
// other namespace's secret.
func RequireAdminToken(authService *service.AuthService) gin.HandlerFunc {
	return requireToken(authService, service.NamespaceAdmin)
}

// RequireUserToken validates a user-namespace JWT from the
// Authorization header.
func RequireUserToken(authService *service.AuthService) gin.HandlerFunc {
	return requireToken(authService, service.NamespaceUser)
}

// requireToken rejects with 401 when no bearer token is present and 403
// when one is present but expired or invalid; the downstream handler only
// runs after the subject ID is attached to the context. The raw token is
// never logged.
func requireToken(authService *service.AuthService, ns service.TokenNamespace) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		subjectID, err := authService.ValidateToken(tokenStr, ns)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				response.AbortFail(c, http.StatusForbidden, response.ErrTokenExpired)
				return
			}
			response.AbortFail(c, http.StatusForbidden, response.ErrTokenInvalid)
			return
		}

		c.Set(ContextKeySubjectID, subjectID)
		c.Next()
	}
}

// GetSubjectID retrieves the authenticated account ID from the Gin context.
func GetSubjectID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get(ContextKeySubjectID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	return id, ok
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Any other shape counts as absent.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
