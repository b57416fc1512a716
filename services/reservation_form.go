package services

import (
	"math"
	"strconv"
	"strings"

	"hotel-admin/forms"
	"hotel-admin/models"
	"hotel-admin/utils"
)

// DefaultOriginCountry is the origin preset on every reservation form.
var DefaultOriginCountry = "AR"

// reservationForm is the typed intermediate of the mapper. A nil pointer means
// the source record had no value, as opposed to an empty one.
type reservationForm struct {
	firstName  string
	lastName   string
	nationalID *string
	phone      *string
	origin     string
	room       *string
	from       *string
	to         *string
	amountPaid *string
}

// MapReservationToForm flattens a reservation into editable string fields.
// It never fails: anything malformed or absent becomes "".
func MapReservationToForm(r models.Reservation) forms.Fields {
	first, last := splitFullName(r.GuestFullName)

	rf := reservationForm{
		firstName:  first,
		lastName:   last,
		nationalID: r.GuestNationalID,
		phone:      r.GuestPhone,
		origin:     DefaultOriginCountry,
		from:       formDate(r.CheckIn),
		to:         formDate(r.CheckOut),
		amountPaid: formAmount(r.AmountPaid),
	}
	if r.RoomID != nil {
		s := strconv.FormatUint(uint64(*r.RoomID), 10)
		rf.room = &s
	}

	return forms.Fields{
		forms.KeyFirstName:  rf.firstName,
		forms.KeyLastName:   rf.lastName,
		forms.KeyNationalID: orEmpty(rf.nationalID),
		forms.KeyPhone:      orEmpty(rf.phone),
		forms.KeyOrigin:     rf.origin,
		forms.KeyRoom:       orEmpty(rf.room),
		forms.KeyFrom:       orEmpty(rf.from),
		forms.KeyTo:         orEmpty(rf.to),
		forms.KeyAmountPaid: orEmpty(rf.amountPaid),
	}
}

func splitFullName(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// formDate keeps dd/mm/yyyy as is and turns ISO into a date-input value.
func formDate(raw string) *string {
	var out string
	switch {
	case utils.IsDDMMYYYY(raw):
		out = raw
	case utils.IsISO(raw):
		out = utils.ToDateInputValue(raw)
	default:
		return nil
	}
	if out == "" {
		return nil
	}
	return &out
}

func formAmount(v *float64) *string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	s := strconv.FormatFloat(*v, 'f', -1, 64)
	return &s
}

func orEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
