package planting

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Date-only helpers. All planting math runs on local-midnight times:
// parsing a bare YYYY-MM-DD through a UTC-implying constructor shifts the
// apparent day in negative-UTC-offset zones, so date-only values are always
// built from explicit components in the local zone.

const dateLayout = "2006-01-02"

func ParseLocalDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// Midnight truncates t to 00:00 in its own location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween returns the number of whole days from one local midnight to
// another, rounding up so a partial day (DST transitions) still counts.
func daysBetween(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}
