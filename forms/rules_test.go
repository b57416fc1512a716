package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-admin/forms"
)

func validReservation() forms.Fields {
	return forms.Fields{
		forms.KeyFirstName:  "Juan",
		forms.KeyLastName:   "Perez",
		forms.KeyOrigin:     "AR",
		forms.KeyRoom:       "3",
		forms.KeyFrom:       "2025-01-05",
		forms.KeyTo:         "07/01/2025",
		forms.KeyAmountPaid: "500",
	}
}

func TestReservationRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(forms.Fields)
		wantKey string
	}{
		{"valid", func(forms.Fields) {}, ""},
		{"missing name", func(f forms.Fields) { f[forms.KeyFirstName] = "" }, forms.KeyFirstName},
		{"missing room", func(f forms.Fields) { f[forms.KeyRoom] = "" }, forms.KeyRoom},
		{"non numeric room", func(f forms.Fields) { f[forms.KeyRoom] = "suite" }, forms.KeyRoom},
		{"bad country", func(f forms.Fields) { f[forms.KeyOrigin] = "XYZ" }, forms.KeyOrigin},
		{"negative amount", func(f forms.Fields) { f[forms.KeyAmountPaid] = "-1" }, forms.KeyAmountPaid},
		{"text amount", func(f forms.Fields) { f[forms.KeyAmountPaid] = "mucho" }, forms.KeyAmountPaid},
		{"missing check-in", func(f forms.Fields) { f[forms.KeyFrom] = "" }, forms.KeyFrom},
		{"impossible check-in", func(f forms.Fields) { f[forms.KeyFrom] = "31/02/2025" }, forms.KeyFrom},
		{"check-out before check-in", func(f forms.Fields) { f[forms.KeyTo] = "2025-01-01" }, forms.KeyTo},
		{"empty check-out is allowed", func(f forms.Fields) { f[forms.KeyTo] = "" }, ""},
		{"empty amount is allowed", func(f forms.Fields) { f[forms.KeyAmountPaid] = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validReservation()
			tt.mutate(f)

			errs := forms.ReservationRules(f)
			if tt.wantKey == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Len(t, errs, 1)
			assert.Contains(t, errs, tt.wantKey)
		})
	}
}
