// CLAUDE:SUMMARY Concrete engine: buffers chunks, runs x/net/html tree construction, replays the result as TreeHandler events.
package engine

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Parser drives tree construction and reports every structural step to the
// registered TreeHandler.
//
// The underlying HTML5 implementation (golang.org/x/net/html) consumes a
// complete input, so ParseChunk accumulates bytes and Finish runs the
// construction pass, emitting the event stream in document order: nodes are
// created and appended pre-order, CompleteScript/CompleteStyle fire once an
// element's subtree is structurally complete, and SetQuirksMode /
// EncodingChange fire at the document position where they are decided.
type Parser struct {
	handler   TreeHandler
	docNode   NodeID
	scripting bool
	styling   bool
	charset   string

	buf      bytes.Buffer
	finished bool

	encodingSent bool
}

// NewParser creates a Parser with the given default character set
// (typically "UTF-8").
func NewParser(charset string) *Parser {
	if charset == "" {
		charset = "UTF-8"
	}
	return &Parser{charset: charset}
}

// SetTreeHandler registers the callback target. Must be set before Finish.
func (p *Parser) SetTreeHandler(h TreeHandler) { p.handler = h }

// SetDocumentNode sets the handle of the document root that top-level
// nodes are appended under.
func (p *Parser) SetDocumentNode(id NodeID) { p.docNode = id }

// EnableScripting controls noscript handling and CompleteScript emission.
func (p *Parser) EnableScripting(on bool) { p.scripting = on }

// EnableStyling controls CompleteStyle emission.
func (p *Parser) EnableStyling(on bool) { p.styling = on }

// ParseChunk feeds one chunk of document bytes to the engine.
func (p *Parser) ParseChunk(chunk []byte) error {
	if p.finished {
		return errors.New("engine: parse chunk after finish")
	}
	p.buf.Write(chunk)
	return nil
}

// Finish runs tree construction over the accumulated input and emits the
// event stream. The first handler error aborts the pass and is returned.
func (p *Parser) Finish() error {
	if p.finished {
		return errors.New("engine: finish called twice")
	}
	p.finished = true
	if p.handler == nil {
		return errors.New("engine: no tree handler")
	}
	if p.docNode == 0 {
		return errors.New("engine: no document node")
	}

	root, err := html.ParseWithOptions(bytes.NewReader(p.buf.Bytes()),
		html.ParseOptionEnableScripting(p.scripting))
	if err != nil {
		return fmt.Errorf("engine: construct: %w", err)
	}

	seenDoctype := false
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.DoctypeNode {
			seenDoctype = true
			if err := p.emitDoctype(c); err != nil {
				return err
			}
			continue
		}
		if c.Type == html.ElementNode && !seenDoctype {
			// Content before any doctype forces full quirks.
			seenDoctype = true
			if err := p.handler.SetQuirksMode(FullQuirks); err != nil {
				return err
			}
		}
		if err := p.emit(c, p.docNode); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) emitDoctype(n *html.Node) error {
	dt := Doctype{Name: n.Data}
	for _, a := range n.Attr {
		switch a.Key {
		case "public":
			dt.PublicID = a.Val
		case "system":
			dt.SystemID = a.Val
		}
	}
	id, err := p.handler.CreateDoctype(dt)
	if err != nil {
		return err
	}
	if _, err := p.handler.AppendChild(p.docNode, id); err != nil {
		return err
	}
	return p.handler.SetQuirksMode(quirksModeFor(&dt))
}

func (p *Parser) emit(n *html.Node, parent NodeID) error {
	switch n.Type {
	case html.TextNode:
		id, err := p.handler.CreateText(n.Data)
		if err != nil {
			return err
		}
		_, err = p.handler.AppendChild(parent, id)
		return err

	case html.CommentNode:
		id, err := p.handler.CreateComment(n.Data)
		if err != nil {
			return err
		}
		_, err = p.handler.AppendChild(parent, id)
		return err

	case html.ElementNode:
		tag := Tag{
			Name:      n.Data,
			Namespace: elementNamespace(n.Namespace),
			Attrs:     convertAttrs(n.Attr),
		}
		id, err := p.handler.CreateElement(tag)
		if err != nil {
			return err
		}
		if _, err := p.handler.AppendChild(parent, id); err != nil {
			return err
		}
		if tag.Namespace == NamespaceHTML && n.Data == "meta" {
			if err := p.maybeEmitEncoding(n); err != nil {
				return err
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := p.emit(c, id); err != nil {
				return err
			}
		}
		if tag.Namespace == NamespaceHTML {
			switch n.Data {
			case "script":
				if p.scripting {
					return p.handler.CompleteScript(id)
				}
			case "style":
				if p.styling {
					return p.handler.CompleteStyle(id)
				}
			}
		}
		return nil
	}
	// ErrorNode and nested DoctypeNode do not occur in a constructed tree.
	return nil
}

// maybeEmitEncoding reports a character-set declaration found in a meta
// element. Fires at most once, and only when the declared set differs from
// the engine default. Re-decoding of already-consumed bytes is the caller's
// concern.
func (p *Parser) maybeEmitEncoding(n *html.Node) error {
	if p.encodingSent {
		return nil
	}
	name := metaCharset(n)
	if name == "" || strings.EqualFold(name, p.charset) {
		return nil
	}
	p.encodingSent = true
	return p.handler.EncodingChange(name)
}

func metaCharset(n *html.Node) string {
	var httpEquiv, content, charset string
	for _, a := range n.Attr {
		switch strings.ToLower(a.Key) {
		case "charset":
			charset = strings.TrimSpace(a.Val)
		case "http-equiv":
			httpEquiv = strings.ToLower(strings.TrimSpace(a.Val))
		case "content":
			content = a.Val
		}
	}
	if charset != "" {
		return charset
	}
	if httpEquiv != "content-type" {
		return ""
	}
	// Extract charset= from a content-type value.
	lower := strings.ToLower(content)
	idx := strings.Index(lower, "charset=")
	if idx < 0 {
		return ""
	}
	value := content[idx+len("charset="):]
	value = strings.Trim(value, `"' `)
	if semi := strings.IndexByte(value, ';'); semi >= 0 {
		value = value[:semi]
	}
	return strings.TrimSpace(value)
}

func elementNamespace(ns string) NamespaceID {
	switch ns {
	case "":
		return NamespaceHTML
	case "math":
		return NamespaceMathML
	case "svg":
		return NamespaceSVG
	}
	return NamespaceNone
}

func convertAttrs(attrs []html.Attribute) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attr, 0, len(attrs))
	for _, a := range attrs {
		ns := NamespaceNone
		switch a.Namespace {
		case "xlink":
			ns = NamespaceXLink
		case "xml":
			ns = NamespaceXML
		case "xmlns":
			ns = NamespaceXMLNS
		}
		out = append(out, Attr{Namespace: ns, Name: a.Key, Value: a.Val})
	}
	return out
}
