package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	RoomNumber string  `json:"numero" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Type       string  `json:"tipo" gorm:"column:type;type:varchar(100)"`
	Enabled    bool    `json:"habilitada" gorm:"column:enabled;default:true"`
	Price      float64 `json:"precio" gorm:"column:price"`
}
