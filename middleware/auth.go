package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-admin/utils"
)

const (
	ctxUserID = "user_id"
	ctxRoleID = "role_id"
)

// Auth requires a valid bearer token and exposes its user and role ids on the
// gin context.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if len(header) <= 7 || !strings.EqualFold(header[:7], "bearer ") {
			utils.AbortJSONError(c, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := utils.ParseToken(strings.TrimSpace(header[7:]), secret)
		if err != nil {
			utils.AbortJSONError(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRoleID, claims.RoleID)
		c.Next()
	}
}

// UserID returns the authenticated user id, if any.
func UserID(c *gin.Context) (uint, bool) {
	return uintFromContext(c, ctxUserID)
}

// RoleID returns the authenticated role id, if any.
func RoleID(c *gin.Context) (uint, bool) {
	return uintFromContext(c, ctxRoleID)
}

func uintFromContext(c *gin.Context, key string) (uint, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
