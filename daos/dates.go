package daos

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Today returns the current calendar date in the wire format used by the API.
func Today() string {
	return time.Now().Format(dateLayout)
}

// parseDate validates a YYYY-MM-DD string. An empty string defaults to today.
func parseDate(s string) (string, error) {
	if s == "" {
		return Today(), nil
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("%w: bad date %q, want YYYY-MM-DD", ErrInvalidInput, s)
	}
	return s, nil
}

// checkDateWindow enforces from <= d <= today. ISO dates compare correctly
// as strings.
func checkDateWindow(d, from string) error {
	if d > Today() {
		return fmt.Errorf("%w: date %s is in the future", ErrDateOrder, d)
	}
	if from != "" && d < from {
		return fmt.Errorf("%w: date %s precedes arrival date %s", ErrDateOrder, d, from)
	}
	return nil
}
