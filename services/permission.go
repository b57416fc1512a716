package services

import (
	"slices"

	"hotel-admin/models"
)

// FindRole returns the first role with the given id.
func FindRole(roles []models.Role, roleID uint) (models.Role, bool) {
	idx := slices.IndexFunc(roles, func(r models.Role) bool { return r.ID == roleID })
	if idx == -1 {
		return models.Role{}, false
	}
	return roles[idx], true
}

// FindGrant returns the role's first grant for module, matched by exact name.
func FindGrant(role models.Role, module string) (models.PermissionGrant, bool) {
	idx := slices.IndexFunc(role.Grants, func(g models.PermissionGrant) bool { return g.Module == module })
	if idx == -1 {
		return models.PermissionGrant{}, false
	}
	return role.Grants[idx], true
}

// HasPermission reports whether roleID may perform action on module. A
// missing role, grant or action is simply false.
func HasPermission(roles []models.Role, roleID uint, module, action string) bool {
	role, ok := FindRole(roles, roleID)
	if !ok {
		return false
	}
	grant, ok := FindGrant(role, module)
	if !ok {
		return false
	}
	return slices.Contains(grant.Actions, action)
}
