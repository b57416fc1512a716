package forms

import (
	"strconv"

	"github.com/go-playground/validator/v10"

	"hotel-admin/utils"
)

// Reservation form keys.
const (
	KeyFirstName  = "nombre"
	KeyLastName   = "apellido"
	KeyNationalID = "dni"
	KeyPhone      = "telefono"
	KeyOrigin     = "origen"
	KeyRoom       = "habitacion"
	KeyFrom       = "fechaDesde"
	KeyTo         = "fechaHasta"
	KeyAmountPaid = "montoPagado"
)

// KindReservation tags sessions opened from a reservation record.
const KindReservation = "reserva"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ReservationRules validates a reservation form field set.
func ReservationRules(f Fields) Errors {
	errs := Errors{}

	check := func(key, tag, msg string) {
		if _, done := errs[key]; done {
			return
		}
		if err := validate.Var(f[key], tag); err != nil {
			errs[key] = msg
		}
	}

	check(KeyFirstName, "required", "el nombre es obligatorio")
	check(KeyRoom, "required", "la habitación es obligatoria")
	check(KeyRoom, "numeric", "habitación inválida")
	check(KeyOrigin, "omitempty,iso3166_1_alpha2", "código de país inválido")

	if v := f[KeyAmountPaid]; v != "" {
		check(KeyAmountPaid, "numeric", "el monto debe ser numérico")
		if _, bad := errs[KeyAmountPaid]; !bad {
			if n, err := strconv.ParseFloat(v, 64); err != nil || n < 0 {
				errs[KeyAmountPaid] = "el monto no puede ser negativo"
			}
		}
	}

	from := utils.NormalizeDate(f[KeyFrom])
	switch {
	case f[KeyFrom] == "":
		errs[KeyFrom] = "la fecha de ingreso es obligatoria"
	case from == "":
		errs[KeyFrom] = "fecha de ingreso inválida"
	}

	to := utils.NormalizeDate(f[KeyTo])
	if f[KeyTo] != "" && to == "" {
		errs[KeyTo] = "fecha de egreso inválida"
	}
	// yyyy-mm-dd compares correctly as text
	if from != "" && to != "" && to < from {
		errs[KeyTo] = "el egreso no puede ser anterior al ingreso"
	}

	return errs
}
