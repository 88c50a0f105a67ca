package lifecycle

import (
	"strings"
	"time"
)

// Layouts accepted for stored/imported dates. DisplayLayout is how the
// institution reads dates (dd.mm.yyyy); StoreLayout is what the database
// keeps.
const (
	StoreLayout   = "2006-01-02"
	DisplayLayout = "02.01.2006"
)

// ParseDate parses a stored or user-supplied date string. It accepts the
// store layout, the display layout and the slash variant seen in old
// spreadsheets. Malformed input returns ok=false, never an error: callers
// degrade to the "no date" sentinels.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{StoreLayout, DisplayLayout, "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AddMonths advances t by whole calendar months, clamping to the last day
// of the target month (2024-01-31 + 1 month = 2024-02-29). time.AddDate
// would normalize overflow into the next month instead, which is not how
// contract durations are counted.
func AddMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + months
	ny := y + total/12
	rem := total % 12
	if rem < 0 {
		rem += 12
		ny--
	}
	nm := time.Month(rem + 1)
	if last := lastDayOfMonth(ny, nm); d > last {
		d = last
	}
	return time.Date(ny, nm, d, 0, 0, 0, 0, t.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// daysBetween returns a-b in whole days at calendar-date granularity.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ad.Sub(bd).Hours() / 24)
}
