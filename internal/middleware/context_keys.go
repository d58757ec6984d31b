package middleware

import "github.com/gin-gonic/gin"

// userIDKey stores the authenticated actor's ID in the request context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated actor's user ID from the
// Gin context or the underlying request context. The second return value
// reports whether an actor was identified for this request.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		if ctxVal := c.Request.Context().Value(userIDKey); ctxVal != nil {
			if id, ok := ctxVal.(string); ok {
				return id, true
			}
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}
