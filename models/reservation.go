package models

import (
	"gorm.io/gorm"
)

type ReservationStatus string

const (
	StatusCheckIn   ReservationStatus = "check-in"
	StatusCheckOut  ReservationStatus = "check-out"
	StatusReserved  ReservationStatus = "reservado"
	StatusCancelled ReservationStatus = "cancelado"
)

// Valid reports whether s is one of the known reservation states.
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusCheckIn, StatusCheckOut, StatusReserved, StatusCancelled:
		return true
	}
	return false
}

// Reservation keeps check-in/check-out exactly as entered by the front desk:
// either dd/mm/yyyy or an ISO date, so the raw value is stored as text.
type Reservation struct {
	gorm.Model

	RoomID     *uint  `json:"habitacion,omitempty" gorm:"column:room_id;index"`
	RoomNumber string `json:"numeroHabitacion" gorm:"column:room_number;type:varchar(50)"`

	CheckIn  string `json:"ingreso" gorm:"column:check_in;type:varchar(32)"`
	CheckOut string `json:"egreso" gorm:"column:check_out;type:varchar(32)"`

	GuestFullName   string  `json:"huespedNombre" gorm:"column:guest_full_name;size:255"`
	GuestPhone      *string `json:"huespedTelefono,omitempty" gorm:"column:guest_phone;size:50"`
	GuestEmail      *string `json:"huespedEmail,omitempty" gorm:"column:guest_email;size:150"`
	GuestNationalID *string `json:"huespedDni,omitempty" gorm:"column:guest_national_id;size:50"`

	AmountPaid  *float64 `json:"montoPagado,omitempty" gorm:"column:amount_paid"`
	TotalAmount float64  `json:"montoTotal" gorm:"column:total_amount"`

	Status ReservationStatus `json:"estado" gorm:"column:status;size:32;index"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}
