// CLAUDE:SUMMARY Document root type with quirks mode, encoding, last-modified, and navigation URL state.
package htmldoc

import "net/url"

// QuirksMode is the rendering compatibility mode determined during parsing.
type QuirksMode int

const (
	NoQuirks QuirksMode = iota
	LimitedQuirks
	Quirks
)

func (m QuirksMode) String() string {
	switch m {
	case NoQuirks:
		return "no-quirks"
	case LimitedQuirks:
		return "limited-quirks"
	case Quirks:
		return "quirks"
	}
	return "unknown"
}

// Document is the root owner of a node tree. It is created by the caller
// before parsing begins and outlives the parse.
//
// The Document is not safe for concurrent mutation: during parsing it is
// written exclusively by the parse driver's goroutine.
type Document struct {
	Root *Node

	quirks       QuirksMode
	encoding     string
	lastModified string
	url          *url.URL
}

// NewDocument creates an empty document with a fresh root node.
func NewDocument() *Document {
	d := &Document{encoding: "UTF-8"}
	d.Root = &Node{Type: DocumentNode, Owner: d}
	return d
}

// SetQuirksMode records the compatibility mode reported by the parser.
func (d *Document) SetQuirksMode(m QuirksMode) { d.quirks = m }

// QuirksMode returns the recorded compatibility mode.
func (d *Document) QuirksMode() QuirksMode { return d.quirks }

// SetEncoding records the detected character encoding name.
func (d *Document) SetEncoding(name string) { d.encoding = name }

// Encoding returns the detected character encoding name. Defaults to UTF-8.
func (d *Document) Encoding() string { return d.encoding }

// SetLastModified records the formatted Last-Modified value of the page.
func (d *Document) SetLastModified(s string) { d.lastModified = s }

// LastModified returns the formatted Last-Modified value, empty if the
// header was absent or unparseable.
func (d *Document) LastModified() string { return d.lastModified }

// SetURL records the document's navigation URL. Set before parsing starts
// so relative URL resolution observes the final, post-redirect location.
func (d *Document) SetURL(u *url.URL) { d.url = u }

// URL returns the document's navigation URL, nil if none was assigned.
func (d *Document) URL() *url.URL { return d.url }
