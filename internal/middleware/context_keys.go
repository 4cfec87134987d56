package middleware

import "github.com/gin-gonic/gin"

const (
	userIDKey   = contextKey("userID")
	tenantIDKey = contextKey("tenantID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(userIDKey); v != nil {
		if userID, ok := v.(string); ok {
			return userID, true
		}
	}
	return "", false
}

// GetTenantIDFromContext retrieves the tenant ID resolved by the auth
// middleware. Every engine operation is scoped by it.
func GetTenantIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(tenantIDKey); v != nil {
		if tenantID, ok := v.(string); ok {
			return tenantID, true
		}
	}
	return "", false
}
