// CLAUDE:SUMMARY Script element helpers: executable-type detection and source attribute access.
package htmldoc

import "strings"

// jsMIMETypes are the MIME types treated as JavaScript for the purpose of
// script discovery, per the HTML script processing model's legacy list.
var jsMIMETypes = map[string]bool{
	"application/ecmascript":   true,
	"application/javascript":   true,
	"application/x-ecmascript": true,
	"application/x-javascript": true,
	"text/ecmascript":          true,
	"text/javascript":          true,
	"text/javascript1.0":       true,
	"text/javascript1.1":       true,
	"text/javascript1.2":       true,
	"text/javascript1.3":       true,
	"text/javascript1.4":       true,
	"text/javascript1.5":       true,
	"text/jscript":             true,
	"text/livescript":          true,
	"text/x-ecmascript":        true,
	"text/x-javascript":        true,
}

// IsJavaScript reports whether n is a script element whose computed type is
// executable JavaScript. A missing or empty type attribute counts as
// JavaScript.
func (n *Node) IsJavaScript() bool {
	if n.Type != ElementNode || n.Kind != KindScript {
		return false
	}
	typ, ok := n.Attr("type")
	if !ok || strings.TrimSpace(typ) == "" {
		return true
	}
	return jsMIMETypes[strings.ToLower(strings.TrimSpace(typ))]
}

// SrcAttr returns the script's src attribute, distinguishing an external
// script from an inline one.
func (n *Node) SrcAttr() (string, bool) {
	return n.Attr("src")
}
