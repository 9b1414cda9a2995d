package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/dapurnina/catering-app/utils"
)

// WebSocketAuthMiddleware membaca token dari query string karena
// browser tidak bisa mengirim header Authorization di handshake ws.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatus(401)
			return
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			c.AbortWithStatus(401)
			return
		}

		c.Set("role", claims.Role)
		c.Set("user_id", claims.UserID)

		c.Next()
	}
}
