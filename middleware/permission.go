package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hotel-admin/models"
	"hotel-admin/services"
	"hotel-admin/utils"
)

// RoleLister loads the current role table.
type RoleLister interface {
	List(ctx context.Context) ([]models.Role, error)
}

// Permissions builds route guards backed by the role table.
type Permissions struct {
	Roles RoleLister
	Log   *logrus.Logger
}

// Require lets the request through only when the authenticated role holds
// action on module. Must run after Auth.
func (p Permissions) Require(module, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleID, ok := RoleID(c)
		if !ok {
			utils.AbortJSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}

		roles, err := p.Roles.List(c.Request.Context())
		if err != nil {
			if p.Log != nil {
				p.Log.WithError(err).Error("failed to load roles for permission check")
			}
			utils.AbortJSONError(c, http.StatusInternalServerError, "failed to check permissions")
			return
		}

		if !services.HasPermission(roles, roleID, module, action) {
			utils.AbortJSONError(c, http.StatusForbidden, "forbidden")
			return
		}
		c.Next()
	}
}
