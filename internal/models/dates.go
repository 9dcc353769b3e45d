package models

import (
	"fmt"
	"strings"
	"time"
)

// wire date layouts the backend is known to emit
const (
	dateLayout = "2006-01-02"
)

// DatePortion returns the date part of an ISO timestamp, dropping any
// time component ("2024-01-02T00:00:00Z" -> "2024-01-02"). Values
// without a time portion pass through unchanged.
func DatePortion(value string) string {
	if idx := strings.IndexByte(value, 'T'); idx >= 0 {
		return value[:idx]
	}
	return value
}

// FormatDateBR renders a wire date as dd/mm/yyyy, the format the board
// cards use. Unparseable values are returned as-is so a backend format
// drift degrades to raw text instead of hiding the date.
func FormatDateBR(value string) string {
	if value == "" {
		return ""
	}
	t, err := time.Parse(dateLayout, DatePortion(value))
	if err != nil {
		return value
	}
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
}

// Today returns the current date in the backend's wire format. Used to
// prefill the start date of the create-task form.
func Today() string {
	return time.Now().Format(dateLayout)
}
