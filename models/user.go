package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FullName  string         `gorm:"size:255" json:"nombre"`
	Username  string         `gorm:"uniqueIndex;size:150" json:"usuario"`
	Password  string         `gorm:"size:255" json:"-"` // bcrypt hash, never serialized
	RoleID    uint           `gorm:"index" json:"idTipoUsuario"`
	Role      Role           `gorm:"foreignKey:RoleID" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
