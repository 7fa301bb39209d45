package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/util"
)

// AuthMiddleware validates the bearer token and stores the caller's user ID
// on the request context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := util.ExtractToken(c.Request)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			c.Abort()
			return
		}

		userID, err := util.ParseJWT(token, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
