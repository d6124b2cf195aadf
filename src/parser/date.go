package parser

import (
	"strings"

	"github.com/username/galleon/backend/src/models"
)

// resolveDate scans the lowercased input for a relative-date keyword and
// converts the first match into an absolute YYYY-MM-DD date by offsetting the
// engine clock. It also returns the literal keyword that matched. Absolute
// date text ("2024-03-01") is not parsed.
func (e *Engine) resolveDate(lower string) (date string, keyword string, ok bool) {
	for _, dk := range dateKeywords {
		if strings.Contains(lower, dk.Keyword) {
			day := e.now().AddDate(0, 0, dk.Offset)
			return day.Format(models.ISODateFormat), dk.Keyword, true
		}
	}
	return "", "", false
}
