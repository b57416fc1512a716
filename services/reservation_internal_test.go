package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hotel-admin/models"
)

func TestAssignRoom(t *testing.T) {
	rooms := []models.Room{{Model: gorm.Model{ID: 3}, RoomNumber: "201", Price: 1500}}
	roomID := func(id uint) *uint { return &id }

	t.Run("known room", func(t *testing.T) {
		r := models.Reservation{RoomID: roomID(3), RoomNumber: "999", CheckIn: "2025-01-05", CheckOut: "2025-01-07"}
		require.NoError(t, assignRoom(rooms, &r))
		assert.Equal(t, "201", r.RoomNumber)
		assert.Equal(t, 3000.0, r.TotalAmount)
	})

	t.Run("explicit total is kept", func(t *testing.T) {
		r := models.Reservation{RoomID: roomID(3), TotalAmount: 10}
		require.NoError(t, assignRoom(rooms, &r))
		assert.Equal(t, 10.0, r.TotalAmount)
	})

	t.Run("unknown room", func(t *testing.T) {
		r := models.Reservation{RoomID: roomID(42), RoomNumber: "42"}
		err := assignRoom(rooms, &r)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, r.TotalAmount)
	})

	t.Run("no room", func(t *testing.T) {
		r := models.Reservation{CheckIn: "2025-01-05", CheckOut: "2025-01-06"}
		require.NoError(t, assignRoom(rooms, &r))
		assert.Equal(t, 1000.0, r.TotalAmount)
	})
}
