package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careerpath-backend/internal/shared/server/respond"
)

const userIDKey = "userId"

// Identity resolves the caller's user id and stores it in the request context.
// Token verification happens upstream; this layer only trusts the forwarded
// identity header. In dev a missing header falls back to a fixed local user.
func Identity(env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}

		userID := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if userID == "" && env == "dev" {
			userID = "dev-user"
		}
		if userID == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserIDFromContext fetches the user id stored by Identity middleware.
func UserIDFromContext(c *gin.Context) string {
	return c.GetString(userIDKey)
}
