package utils

import (
	"math"
	"strconv"
	"strings"

	"hotel-admin/models"
)

// DefaultRoomPrice is charged when a room or its price cannot be resolved.
const DefaultRoomPrice = 1000.0

// RoomPrice returns the price of the first room whose id equals id. A missing
// room or a non-finite price yields DefaultRoomPrice.
func RoomPrice(rooms []models.Room, id uint) float64 {
	for _, room := range rooms {
		if room.ID != id {
			continue
		}
		if math.IsNaN(room.Price) || math.IsInf(room.Price, 0) {
			return DefaultRoomPrice
		}
		return room.Price
	}
	return DefaultRoomPrice
}

// RoomPriceByKey is RoomPrice for an id given as text, compared numerically
// ("007" matches room 7).
func RoomPriceByKey(rooms []models.Room, raw string) float64 {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id > math.MaxUint32 {
		return DefaultRoomPrice
	}
	return RoomPrice(rooms, uint(id))
}
