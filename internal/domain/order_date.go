package domain

import (
	"strings"
	"time"
)

// Order date layouts accepted on the wire
const (
	DateLayout     = "2006/01/02"
	DateTimeLayout = "2006/01/02 15:04"
)

// ParseOrderDate parses an order date in either accepted layout.
// Dates in the future are rejected.
func ParseOrderDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}

	t, err := time.ParseInLocation(DateTimeLayout, value, time.Local)
	if err != nil {
		t, err = time.ParseInLocation(DateLayout, value, time.Local)
	}
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	if t.After(time.Now()) {
		return time.Time{}, ErrFutureDate
	}

	return t, nil
}

// ValidOrderDate reports whether raw is a parseable, non-future order date
func ValidOrderDate(raw string) bool {
	_, err := ParseOrderDate(raw)
	return err == nil
}
