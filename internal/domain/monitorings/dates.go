package monitorings

import (
	"strings"
	"time"

	"pet-care-journal/internal/platform/apperr"
)

const (
	// QueryDateLayout es el formato de start/end en query (YYYYMMDD).
	QueryDateLayout = "20060102"
	// BodyDateLayout es el formato de "date" en el body.
	BodyDateLayout = "2006-01-02"

	// MinRangeDays: end - start tiene que ser de al menos una semana.
	MinRangeDays = 7
)

// ParseRange valida start/end (YYYYMMDD) y el piso de 7 días.
func ParseRange(start, end string) (time.Time, time.Time, error) {
	s, err := time.Parse(QueryDateLayout, strings.TrimSpace(start))
	if err != nil {
		return time.Time{}, time.Time{}, apperr.InvalidRequest("start must be YYYYMMDD")
	}
	e, err := time.Parse(QueryDateLayout, strings.TrimSpace(end))
	if err != nil {
		return time.Time{}, time.Time{}, apperr.InvalidRequest("end must be YYYYMMDD")
	}

	if daysBetween(s, e) < MinRangeDays {
		return time.Time{}, time.Time{}, apperr.InvalidRequest("date range must span at least 7 days")
	}
	return s, e, nil
}

// ParseDate lee la fecha del body y la deja en 00:00 UTC.
func ParseDate(v string) (time.Time, error) {
	d, err := time.Parse(BodyDateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, apperr.InvalidRequest("date must be YYYY-MM-DD")
	}
	return d, nil
}

// DateOnly trunca a fecha calendario en UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}
