package validation

import "testing"

func TestStripUnprintable(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "星巴克 35", "星巴克 35"},
		{"control characters dropped", "星巴克\x00 35\x07", "星巴克 35"},
		{"allowed whitespace kept", "line1\n\tline2\r", "line1\n\tline2\r"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripUnprintable(tt.input); got != tt.want {
				t.Errorf("StripUnprintable(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanInputText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"trims whitespace", "  星巴克 35  ", 200, "星巴克 35"},
		{"caps by runes not bytes", "星巴克拿铁大杯", 3, "星巴克"},
		{"under the cap untouched", "星巴克 35", 200, "星巴克 35"},
		{"zero cap means unlimited", "星巴克 35", 0, "星巴克 35"},
		{"strips before trimming", "\x00  35  \x00", 200, "35"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanInputText(tt.input, tt.maxRunes); got != tt.want {
				t.Errorf("CleanInputText(%q, %d) = %q, want %q", tt.input, tt.maxRunes, got, tt.want)
			}
		})
	}
}
