package middleware

import (
	"net/http"
	"strings"

	"crewlink_backend/internal/auth"
	"crewlink_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const agencyIDKey = "agencyID"

// AuthMiddleware validates the bearer token and stores the agency ID in
// both the gin context and the request context (for logging).
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(agencyIDKey, claims.AgencyID)
		ctx := logger.WithAgencyID(c.Request.Context(), claims.AgencyID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetAgencyID extracts the authenticated agency ID from the context.
func GetAgencyID(c *gin.Context) string {
	val, exists := c.Get(agencyIDKey)
	if !exists {
		return ""
	}

	id, ok := val.(string)
	if !ok {
		return ""
	}
	return id
}
