package models

import (
	"time"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"usuario,omitempty"`
	Method    string    `gorm:"size:10" json:"metodo"`
	Path      string    `gorm:"size:255;index" json:"ruta"`
	Status    int       `json:"estado"`
	ClientIP  string    `gorm:"size:64" json:"ip"`
	CreatedAt time.Time `gorm:"index" json:"fecha"`
}
