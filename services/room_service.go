package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hotel-admin/models"
	"hotel-admin/utils"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.WithContext(ctx).Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) Get(ctx context.Context, id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).First(&room, id).Error; err != nil {
		return models.Room{}, mapDBError(err)
	}
	return room, nil
}

func (s *RoomService) Create(ctx context.Context, room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return fmt.Errorf("%w: room number is required", ErrInvalidInput)
	}
	return mapDBError(s.DB.WithContext(ctx).Create(room).Error)
}

func (s *RoomService) Update(ctx context.Context, id uint, in models.Room) (models.Room, error) {
	room, err := s.Get(ctx, id)
	if err != nil {
		return models.Room{}, err
	}
	if n := strings.TrimSpace(in.RoomNumber); n != "" {
		room.RoomNumber = n
	}
	room.Type = in.Type
	room.Enabled = in.Enabled
	room.Price = in.Price
	if err := s.DB.WithContext(ctx).Save(&room).Error; err != nil {
		return models.Room{}, mapDBError(err)
	}
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Room{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete room: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Price resolves a room price from the current inventory. Lookup failures,
// including a failing query, fall back to the default price.
func (s *RoomService) Price(ctx context.Context, rawID string) float64 {
	rooms, err := s.List(ctx)
	if err != nil {
		return utils.DefaultRoomPrice
	}
	return utils.RoomPriceByKey(rooms, rawID)
}
