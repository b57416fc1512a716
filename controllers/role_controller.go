package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-admin/middleware"
	"hotel-admin/models"
	"hotel-admin/services"
	"hotel-admin/utils"
)

type RoleStore interface {
	List(ctx context.Context) ([]models.Role, error)
	ReplaceGrants(ctx context.Context, roleID uint, grants []models.PermissionGrant) (models.Role, error)
}

type RoleController struct {
	Roles RoleStore
}

func NewRoleController(roles RoleStore) *RoleController {
	return &RoleController{Roles: roles}
}

type rolePermissionsPayload struct {
	Grants []models.PermissionGrant `json:"permisos"`
}

type permissionCheckPayload struct {
	RoleID *uint  `json:"idTipoUsuario"`
	Module string `json:"modulo" binding:"required"`
	Action string `json:"accion" binding:"required"`
}

// GetRoles (GET /api/roles)
func (ctrl *RoleController) GetRoles(c *gin.Context) {
	roles, err := ctrl.Roles.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, roles)
}

// UpdateRolePermissions (PUT /api/roles/:id/permissions) replaces all grants.
func (ctrl *RoleController) UpdateRolePermissions(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payload rolePermissionsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	role, err := ctrl.Roles.ReplaceGrants(c.Request.Context(), id, payload.Grants)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, role)
}

// CheckPermission (POST /api/permissions/check) answers whether a role, by
// default the caller's, may perform an action on a module. Asking about
// another role requires usuario/read.
func (ctrl *RoleController) CheckPermission(c *gin.Context) {
	var payload permissionCheckPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	callerRole, authenticated := middleware.RoleID(c)
	if !authenticated {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	roles, err := ctrl.Roles.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	roleID := callerRole
	if payload.RoleID != nil && *payload.RoleID != callerRole {
		if !services.HasPermission(roles, callerRole, "usuario", "read") {
			utils.JSONError(c, http.StatusForbidden, "forbidden")
			return
		}
		roleID = *payload.RoleID
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"idTipoUsuario": roleID,
		"modulo":        payload.Module,
		"accion":        payload.Action,
		"permitido":     services.HasPermission(roles, roleID, payload.Module, payload.Action),
	})
}
