package services_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-admin/forms"
	"hotel-admin/models"
	"hotel-admin/services"
)

func ptr[T any](v T) *T { return &v }

func TestMapReservationToForm(t *testing.T) {
	got := services.MapReservationToForm(models.Reservation{
		GuestFullName: "Juan Carlos Perez",
		CheckIn:       "2025-01-05",
		CheckOut:      "",
		AmountPaid:    ptr(500.0),
	})

	assert.Equal(t, forms.Fields{
		"nombre":      "Juan",
		"apellido":    "Carlos Perez",
		"dni":         "",
		"telefono":    "",
		"origen":      "AR",
		"habitacion":  "",
		"fechaDesde":  "2025-01-05",
		"fechaHasta":  "",
		"montoPagado": "500",
	}, got)
}

func TestMapReservationToFormDates(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"day-month-year passes through", "05/01/2025", "05/01/2025"},
		{"lenient day-month-year", "31/02/2025", "31/02/2025"},
		{"iso timestamp", "2025-03-10T14:00:00Z", "2025-03-10"},
		{"invalid iso", "2025-13-45", ""},
		{"unrecognised", "next monday", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.MapReservationToForm(models.Reservation{CheckIn: tt.raw, CheckOut: tt.raw})
			assert.Equal(t, tt.want, got[forms.KeyFrom])
			assert.Equal(t, tt.want, got[forms.KeyTo])
		})
	}
}

func TestMapReservationToFormOptionalFields(t *testing.T) {
	got := services.MapReservationToForm(models.Reservation{
		RoomID:          ptr(uint(12)),
		GuestFullName:   "  Ana   Maria   Lopez ",
		GuestPhone:      ptr("+54 11 5555 5555"),
		GuestNationalID: ptr("30111222"),
		AmountPaid:      ptr(1250.5),
	})

	assert.Equal(t, "Ana", got[forms.KeyFirstName])
	assert.Equal(t, "Maria Lopez", got[forms.KeyLastName])
	assert.Equal(t, "12", got[forms.KeyRoom])
	assert.Equal(t, "+54 11 5555 5555", got[forms.KeyPhone])
	assert.Equal(t, "30111222", got[forms.KeyNationalID])
	assert.Equal(t, "1250.5", got[forms.KeyAmountPaid])
}

func TestMapReservationToFormNeverFails(t *testing.T) {
	got := services.MapReservationToForm(models.Reservation{AmountPaid: ptr(math.NaN())})

	assert.Len(t, got, 9)
	assert.Equal(t, "", got[forms.KeyFirstName])
	assert.Equal(t, "", got[forms.KeyLastName])
	assert.Equal(t, "", got[forms.KeyAmountPaid])
	assert.Equal(t, "AR", got[forms.KeyOrigin])
}
