package housing

import (
	"time"

	"github.com/jhoicas/pg-hostel-api/internal/domain"
	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
)

// DateLayout formato de fechas de entrada/salida en la API.
const DateLayout = "2006-01-02"

// ParseDate convierte "YYYY-MM-DD" a fecha; vacío devuelve nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, domain.ErrInvalidDateFormat
	}
	d := entity.DateOnly(t)
	return &d, nil
}

// FormatDate formatea una fecha para la API; nil devuelve nil.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// ValidateStay exige que la salida, si existe, no sea anterior a la entrada.
func ValidateStay(entry time.Time, exit *time.Time) error {
	if entry.IsZero() {
		return domain.ErrMissingField
	}
	if exit != nil && entity.DateOnly(*exit).Before(entity.DateOnly(entry)) {
		return domain.ErrInvalidDates
	}
	return nil
}
