package models

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar-date form stored in daily_logs.date.
const DateLayout = "2006-01-02"

// NormalizeDate validates s as a calendar date and returns it in canonical
// YYYY-MM-DD form.
func NormalizeDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("models: invalid date %q: %w", s, err)
	}
	return t.Format(DateLayout), nil
}

// Today returns the current calendar date in the server's local timezone.
func Today() string {
	return time.Now().Format(DateLayout)
}
