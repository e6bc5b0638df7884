package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/restoflow/restoflow-api/internal/presentation/http/dto/response"
	"github.com/restoflow/restoflow-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware. The engine only
// needs the authenticated user id for created_by attribution; token
// issuance lives outside this service.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

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
		c.Set("user_name", claims.Name)

		c.Next()
	}
}
