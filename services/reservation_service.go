package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"hotel-admin/models"
	"hotel-admin/utils"
)

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

func (s *ReservationService) List(ctx context.Context) ([]models.Reservation, error) {
	var out []models.Reservation
	if err := s.DB.WithContext(ctx).Order("id DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return out, nil
}

func (s *ReservationService) Get(ctx context.Context, id uint) (models.Reservation, error) {
	var r models.Reservation
	if err := s.DB.WithContext(ctx).First(&r, id).Error; err != nil {
		return models.Reservation{}, mapDBError(err)
	}
	return r, nil
}

// Create stores a reservation. The room number is copied from the room and,
// when no total was given, the total is priced from the room's nightly rate.
func (s *ReservationService) Create(ctx context.Context, r *models.Reservation) error {
	if err := s.prepare(ctx, r); err != nil {
		return err
	}
	return mapDBError(s.DB.WithContext(ctx).Create(r).Error)
}

func (s *ReservationService) Update(ctx context.Context, id uint, in models.Reservation) (models.Reservation, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return models.Reservation{}, err
	}
	in.Model = current.Model
	if err := s.prepare(ctx, &in); err != nil {
		return models.Reservation{}, err
	}
	if err := s.DB.WithContext(ctx).Save(&in).Error; err != nil {
		return models.Reservation{}, mapDBError(err)
	}
	return in, nil
}

func (s *ReservationService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Reservation{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete reservation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ReservationService) prepare(ctx context.Context, r *models.Reservation) error {
	r.GuestFullName = strings.TrimSpace(r.GuestFullName)
	if r.GuestFullName == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}
	if r.Status == "" {
		r.Status = models.StatusReserved
	}
	if !r.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, r.Status)
	}

	var rooms []models.Room
	if err := s.DB.WithContext(ctx).Find(&rooms).Error; err != nil {
		return fmt.Errorf("failed to load rooms: %w", err)
	}
	return assignRoom(rooms, r)
}

// assignRoom copies the room number from the referenced room and fills in a
// quoted total when none was given. A reservation may omit its room, but may
// not name one that does not exist.
func assignRoom(rooms []models.Room, r *models.Reservation) error {
	var id uint
	if r.RoomID != nil {
		room, ok := findRoom(rooms, *r.RoomID)
		if !ok {
			return fmt.Errorf("%w: room %d does not exist", ErrInvalidInput, *r.RoomID)
		}
		id = room.ID
		r.RoomNumber = room.RoomNumber
	}
	if r.TotalAmount <= 0 {
		r.TotalAmount = QuoteStay(rooms, id, r.CheckIn, r.CheckOut)
	}
	return nil
}

// QuoteStay prices a stay as nights × room price. Unreadable or inverted
// dates are charged as a single night.
func QuoteStay(rooms []models.Room, roomID uint, checkIn, checkOut string) float64 {
	return float64(stayNights(checkIn, checkOut)) * utils.RoomPrice(rooms, roomID)
}

func stayNights(checkIn, checkOut string) int {
	from, ok1 := utils.ParseDate(checkIn, time.UTC)
	to, ok2 := utils.ParseDate(checkOut, time.UTC)
	if !ok1 || !ok2 {
		return 1
	}
	nights := int(to.Sub(from).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

func findRoom(rooms []models.Room, id uint) (models.Room, bool) {
	for _, room := range rooms {
		if room.ID == id {
			return room, true
		}
	}
	return models.Room{}, false
}
