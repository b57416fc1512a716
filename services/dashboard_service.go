package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotel-admin/models"
	"hotel-admin/utils"
)

const (
	DefaultSummaryDays = 7
	maxSummaryDays     = 366
)

type DaySummary struct {
	Date         string  `json:"fecha"`
	Reservations int     `json:"reservas"`
	Sales        float64 `json:"ventas"`
}

type Summary struct {
	From              string         `json:"desde"`
	To                string         `json:"hasta"`
	Days              []DaySummary   `json:"dias"`
	TotalReservations int            `json:"totalReservas"`
	TotalSales        float64        `json:"totalVentas"`
	ByStatus          map[string]int `json:"porEstado"`
}

type DashboardService struct {
	DB       *gorm.DB
	Location *time.Location
	Now      func() time.Time
}

func NewDashboardService(db *gorm.DB, loc *time.Location) *DashboardService {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardService{DB: db, Location: loc, Now: time.Now}
}

// Summary aggregates reservations by check-in day. Empty bounds default to
// the last DefaultSummaryDays days ending today in the service location.
func (s *DashboardService) Summary(ctx context.Context, from, to string) (Summary, error) {
	defFrom, defTo := DefaultRange(s.Now().In(s.Location), DefaultSummaryDays)
	if from == "" {
		from = defFrom
	}
	if to == "" {
		to = defTo
	}

	// Check-in dates are stored as entered (dd/mm/yyyy or ISO), so the range
	// cannot be pushed into SQL; every reservation is loaded and filtered in
	// BuildSummary.
	var reservations []models.Reservation
	if err := s.DB.WithContext(ctx).Find(&reservations).Error; err != nil {
		return Summary{}, fmt.Errorf("failed to load reservations: %w", err)
	}
	return BuildSummary(reservations, from, to)
}

// DefaultRange returns the yyyy-mm-dd bounds of the days-long window ending
// on today's local calendar date.
func DefaultRange(today time.Time, days int) (string, string) {
	if days < 1 {
		days = 1
	}
	return utils.ToYMDLocal(today.AddDate(0, 0, -(days - 1))), utils.ToYMDLocal(today)
}

// BuildSummary buckets reservations whose check-in falls within [from, to].
// Cancelled reservations are counted per status but add no sales.
func BuildSummary(reservations []models.Reservation, from, to string) (Summary, error) {
	start, ok := utils.ParseDate(from, time.UTC)
	if !ok {
		return Summary{}, fmt.Errorf("%w: bad start date %q", ErrInvalidInput, from)
	}
	end, ok := utils.ParseDate(to, time.UTC)
	if !ok {
		return Summary{}, fmt.Errorf("%w: bad end date %q", ErrInvalidInput, to)
	}
	if end.Before(start) {
		return Summary{}, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}
	span := int(end.Sub(start).Hours()/24) + 1
	if span > maxSummaryDays {
		return Summary{}, fmt.Errorf("%w: range longer than %d days", ErrInvalidInput, maxSummaryDays)
	}

	sum := Summary{
		From:     utils.ToYMDLocal(start),
		To:       utils.ToYMDLocal(end),
		Days:     make([]DaySummary, span),
		ByStatus: map[string]int{},
	}
	index := make(map[string]int, span)
	for i := 0; i < span; i++ {
		day := utils.ToYMDLocal(start.AddDate(0, 0, i))
		sum.Days[i] = DaySummary{Date: day}
		index[day] = i
	}

	for _, r := range reservations {
		i, ok := index[utils.NormalizeDate(r.CheckIn)]
		if !ok {
			continue
		}
		sum.Days[i].Reservations++
		sum.TotalReservations++
		sum.ByStatus[string(r.Status)]++
		if r.Status == models.StatusCancelled || r.AmountPaid == nil {
			continue
		}
		sum.Days[i].Sales += *r.AmountPaid
		sum.TotalSales += *r.AmountPaid
	}
	return sum, nil
}
