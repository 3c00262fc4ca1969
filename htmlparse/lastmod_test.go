// CLAUDE:SUMMARY Last-Modified parsing tests across the legacy HTTP date formats.
package htmlparse

import (
	"strings"
	"testing"
)

func TestParseLastModified(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"rfc1123", "Sun, 06 Nov 1994 08:49:37 GMT", true},
		{"rfc850", "Sunday, 06-Nov-94 08:49:37 GMT", true},
		{"asctime", "Sun Nov  6 08:49:37 1994", true},
		{"garbage", "not a date", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseLastModified(tt.input)
			if !tt.ok {
				if got != "" {
					t.Fatalf("parseLastModified(%q) = %q, want empty", tt.input, got)
				}
				return
			}
			if got == "" {
				t.Fatalf("parseLastModified(%q) = empty, want a formatted date", tt.input)
			}
			// Format is month/day/year time in local time; the date part is
			// stable for a mid-year timestamp regardless of zone.
			if !strings.Contains(got, "/19") {
				t.Fatalf("parseLastModified(%q) = %q, want mm/dd/yyyy layout", tt.input, got)
			}
		})
	}
}
