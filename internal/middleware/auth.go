package middleware

import (
	"net/http"
	"strings"

	"fitpath_backend/internal/auth"
	"fitpath_backend/internal/logger"
	"fitpath_backend/internal/models"
	"fitpath_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

// AuthMiddleware verifies the bearer token and records the principal.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)

		ctx := logger.WithUserEmail(c.Request.Context(), claims.Email)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRoles gates an endpoint on the caller's STORED role. The users table
// is re-read on every request; token claims are never trusted for
// authorization, so a demotion takes effect immediately.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		email := c.GetString(ContextUserEmail)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied: no principal"})
			return
		}

		db, ok := c.Get(string(contextkeys.DBContextKey))
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server misconfiguration"})
			return
		}

		var user models.User
		err := db.(*gorm.DB).Where("email = ?", email).First(&user).Error
		if err != nil {
			// Missing user record also means no access.
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied: unknown user"})
			return
		}

		if !roleSet[user.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied: insufficient permissions"})
			return
		}

		c.Set(ContextUserRole, string(user.Role))
		c.Next()
	}
}

// GetUserEmail returns the authenticated caller's email, if any.
func GetUserEmail(c *gin.Context) string {
	return c.GetString(ContextUserEmail)
}
