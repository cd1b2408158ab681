// Package forms coerces submitted form fields into typed values using the
// same rules everywhere: fields are trimmed, an empty optional field means
// "absent", and absent numeric fields fall back to their zero defaults.
package forms

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// NormalizeRegNr trims and uppercases a registration number.
func NormalizeRegNr(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// OptionalFloat parses s as a float, treating an empty (or blank) field as
// absent. A non-empty unparseable value is an error.
func OptionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FloatOrZero parses s as a float, defaulting to 0 when the field is empty.
func FloatOrZero(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// IntOrZero parses s as an integer, defaulting to 0 when the field is empty.
func IntOrZero(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// DateOrToday parses a YYYY-MM-DD field, defaulting to the current UTC date
// when the field is empty.
func DateOrToday(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(dateLayout, s)
}

// Default returns s trimmed, or fallback when the trimmed value is empty.
func Default(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}
