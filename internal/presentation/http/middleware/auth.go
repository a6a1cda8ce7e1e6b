package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rizkyfh/laundry-pos-api/internal/presentation/http/dto/response"
	"github.com/rizkyfh/laundry-pos-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("user_role")
		if !exists {
			response.ErrorWithCode(c, 403, "Access denied")
			c.Abort()
			return
		}
		userRole, _ := roleVal.(string)

		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.ErrorWithCode(c, 403, "Insufficient role privileges")
		c.Abort()
	}
}
