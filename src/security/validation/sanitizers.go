package validation

import (
	"strings"
	"unicode"
)

// StripUnprintable removes non-printable characters, allowing common whitespace
// like space, tab, newline, and carriage return.
func StripUnprintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		return -1 // Drop the rune
	}, s)
}

// CleanInputText prepares free-form entry text for the parser: strips
// unprintable characters, trims surrounding whitespace and caps the length at
// maxRunes (rune-safe, so multi-byte text is not cut mid-character).
func CleanInputText(s string, maxRunes int) string {
	cleaned := strings.TrimSpace(StripUnprintable(s))
	if maxRunes > 0 {
		if runes := []rune(cleaned); len(runes) > maxRunes {
			cleaned = string(runes[:maxRunes])
		}
	}
	return cleaned
}
