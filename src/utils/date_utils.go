package utils

import (
	"fmt"
	"time"

	"github.com/username/galleon/backend/src/models"
)

// ParseISODate parses a YYYY-MM-DD date string.
func ParseISODate(dateStr string) (time.Time, error) {
	t, err := time.Parse(models.ISODateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", dateStr)
	}
	return t, nil
}

// FormatISODate formats t as YYYY-MM-DD.
func FormatISODate(t time.Time) string {
	return t.Format(models.ISODateFormat)
}

// TodayRange returns the inclusive date range covering the single day of
// now, for the ledger's default "today" view.
func TodayRange(now time.Time) (start, end string) {
	day := FormatISODate(now)
	return day, day
}
