// CLAUDE:SUMMARY Last-Modified header parsing across the three legacy HTTP date formats.
package htmlparse

import "time"

// lastModifiedLayouts are tried in order, first match wins: RFC 822 as
// updated by RFC 1123, RFC 850 as obsoleted by RFC 1036, and ANSI C's
// asctime format.
var lastModifiedLayouts = []string{
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
}

// parseLastModified parses an HTTP date string and returns a localized
// string suitable for document.lastModified. Unparseable input yields the
// empty string; a malformed header is never fatal.
func parseLastModified(timestamp string) string {
	for _, layout := range lastModifiedLayouts {
		if t, err := time.Parse(layout, timestamp); err == nil {
			return t.Local().Format("01/02/2006 15:04:05")
		}
	}
	return ""
}
