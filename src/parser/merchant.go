package parser

import (
	"strings"

	"github.com/username/galleon/backend/src/models"
)

// resolveMerchant scans the alias index for the first alias that is a
// substring of the lowercased input and returns the canonical merchant and
// its category. Scan order is dictionary declaration order, so overlapping
// aliases resolve to the first declared entry.
func (e *Engine) resolveMerchant(lower string) (string, models.Category, bool) {
	for _, ref := range e.index.ordered {
		if strings.Contains(lower, ref.alias) {
			canonical := ref.canonical
			return canonical, e.index.categories[canonical], true
		}
	}
	return "", "", false
}

// inferCategory falls back to keyword-based classification when no merchant
// alias matched anywhere in the input. Categories are scanned in declaration
// order; the first category with a matching trigger phrase wins.
func inferCategory(lower string) (models.Category, bool) {
	for _, rule := range categoryKeywords {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				return rule.Category, true
			}
		}
	}
	return "", false
}
