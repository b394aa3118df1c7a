package middleware

import (
	"net/http"
	"strings"

	"anchors_backend/internal/auth"
	"anchors_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the Bearer token and stores the authenticated
// identity {userID, role} in the context. Role enforcement stays in the
// services: the company and student paths render role failures with
// different statuses.
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

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// GetUserID extracts the authenticated account id from the context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

// GetUserRole extracts the authenticated role from the context.
func GetUserRole(c *gin.Context) models.UserRole {
	roleVal, exists := c.Get("role")
	if !exists {
		return ""
	}

	role, ok := roleVal.(string)
	if !ok {
		return ""
	}
	return models.UserRole(role)
}
