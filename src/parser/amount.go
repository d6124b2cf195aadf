package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// amountPattern matches the first decimal number (integer or up to two
// fractional digits), optionally followed by whitespace and a currency
// suffix. The suffix is cosmetic; the value comes from the numeric group.
var amountPattern = regexp.MustCompile(buildAmountPattern())

func buildAmountPattern() string {
	quoted := make([]string, len(currencySuffixes))
	for i, s := range currencySuffixes {
		quoted[i] = regexp.QuoteMeta(s)
	}
	return `(?i)(\d+(?:\.\d{1,2})?)(?:\s*(?:` + strings.Join(quoted, "|") + `))?`
}

// extractAmount returns the first amount found in text. Only the first match
// in left-to-right order is considered; additional numbers in the same input
// are ignored. The second return value is false when no number matched.
func extractAmount(text string) (float64, bool) {
	m := amountPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
