package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/model"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/pkg/rbac"
)

// UserDirectory resolves the caller's platform account.
type UserDirectory interface {
	FindByID(ctx context.Context, id int64) (*model.User, error)
}

// RequireAnyPermission demands that the caller's role grants at least one
// of the given permissions. Unknown users and insufficient roles both get
// the standard forbidden response.
func RequireAnyPermission(users UserDirectory, permissions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve user"})
			c.Abort()
			return
		}
		if user == nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}

		if !rbac.HasAnyPermission(user.Role, permissions...) {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
