package models

import (
	"time"

	"gorm.io/datatypes"
)

type Role struct {
	ID          uint              `gorm:"primaryKey" json:"idTipoUsuario"`
	Name        string            `gorm:"size:100;uniqueIndex" json:"nombre"`
	Description string            `gorm:"size:255" json:"descripcion"`
	Grants      []PermissionGrant `gorm:"foreignKey:RoleID" json:"permisos"`
	CreatedAt   time.Time         `json:"-"`
}

// PermissionGrant lists the actions a role may perform on one module.
type PermissionGrant struct {
	ID      uint                        `gorm:"primaryKey" json:"-"`
	RoleID  uint                        `gorm:"not null;index:idx_role_module,unique" json:"-"`
	Module  string                      `gorm:"size:100;not null;index:idx_role_module,unique" json:"modulo"`
	Actions datatypes.JSONSlice[string] `gorm:"type:json" json:"acciones"`
}
