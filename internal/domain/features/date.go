package features

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("Invalid date format: %s. Expected YYYY-MM-DD", e.Value)
}

// ParseDate accepts only YYYY-MM-DD strings naming a real calendar day. There
// is no year 0000.
func ParseDate(s string) (day, month, year int, err error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil || t.Year() < 1 {
		return 0, 0, 0, &FormatError{Value: s}
	}
	return t.Day(), int(t.Month()), t.Year(), nil
}
