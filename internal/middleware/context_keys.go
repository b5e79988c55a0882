package middleware

import "github.com/gin-gonic/gin"

// ownerIDKey is the key used to store the authenticated owner's ID.
// Using a custom type prevents collisions.
const ownerIDKey = contextKey("ownerID")

// GetOwnerIDFromContext retrieves the authenticated owner ID.
// It returns the owner ID and a boolean indicating if it was found.
func GetOwnerIDFromContext(c *gin.Context) (string, bool) {
	if ownerID, ok := c.Request.Context().Value(ownerIDKey).(string); ok && ownerID != "" {
		return ownerID, true
	}
	return "", false
}
