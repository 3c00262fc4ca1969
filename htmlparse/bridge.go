// CLAUDE:SUMMARY Tree construction bridge: translates engine events into mutations on the htmldoc tree and hands completed scripts to the pipeline.
package htmlparse

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/andrewguertin/servo/engine"
	"github.com/andrewguertin/servo/htmldoc"
)

// ErrContract is wrapped by errors that indicate the construction engine
// broke its contract (unknown namespace or mode value). These are fatal:
// the engine is trusted never to produce them, so no recovery is attempted.
var ErrContract = fmt.Errorf("htmlparse: engine contract violation")

// treeBuilder implements engine.TreeHandler. It is the sole writer of the
// document tree for the duration of a parse: every mutation flows through
// it on the parsing goroutine, so no locking is needed.
type treeBuilder struct {
	doc     *htmldoc.Document
	handles *handleTable
	docID   engine.NodeID
	baseURL *url.URL
	scripts *scriptPipeline
	logger  *slog.Logger
}

func newTreeBuilder(doc *htmldoc.Document, baseURL *url.URL, scripts *scriptPipeline, logger *slog.Logger) *treeBuilder {
	b := &treeBuilder{
		doc:     doc,
		handles: newHandleTable(),
		baseURL: baseURL,
		scripts: scripts,
		logger:  logger,
	}
	b.docID = b.handles.register(doc.Root)
	return b
}

// DocumentNode returns the handle the engine should treat as the document
// root.
func (b *treeBuilder) DocumentNode() engine.NodeID { return b.docID }

func (b *treeBuilder) CreateComment(data string) (engine.NodeID, error) {
	return b.handles.register(htmldoc.NewComment(b.doc, data)), nil
}

func (b *treeBuilder) CreateDoctype(dt engine.Doctype) (engine.NodeID, error) {
	return b.handles.register(htmldoc.NewDoctype(b.doc, dt.Name, dt.PublicID, dt.SystemID)), nil
}

func (b *treeBuilder) CreateText(data string) (engine.NodeID, error) {
	return b.handles.register(htmldoc.NewText(b.doc, data)), nil
}

func (b *treeBuilder) CreateElement(tag engine.Tag) (engine.NodeID, error) {
	ns, err := elementNamespaceURL(tag.Namespace)
	if err != nil {
		return 0, err
	}
	el := htmldoc.NewElement(b.doc, tag.Name, ns)
	for _, a := range tag.Attrs {
		attr, err := convertAttr(a)
		if err != nil {
			return 0, err
		}
		el.SetAttributeFromParser(attr)
	}
	return b.handles.register(el), nil
}

// RefNode is a no-op: the engine never owns a node, only references it.
// Lifetime is governed by the tree's exclusive parent-owns-child ownership.
func (b *treeBuilder) RefNode(engine.NodeID) {}

// UnrefNode is a no-op, see RefNode.
func (b *treeBuilder) UnrefNode(engine.NodeID) {}

func (b *treeBuilder) AppendChild(parent, child engine.NodeID) (engine.NodeID, error) {
	p, err := b.handles.resolve(parent)
	if err != nil {
		return 0, err
	}
	c, err := b.handles.resolve(child)
	if err != nil {
		return 0, err
	}
	p.AppendChild(c)
	// The engine expects the child handle echoed back.
	return child, nil
}

func (b *treeBuilder) InsertBefore(parent, child, before engine.NodeID) (engine.NodeID, error) {
	p, err := b.handles.resolve(parent)
	if err != nil {
		return 0, err
	}
	c, err := b.handles.resolve(child)
	if err != nil {
		return 0, err
	}
	var ref *htmldoc.Node
	if before != 0 {
		if ref, err = b.handles.resolve(before); err != nil {
			return 0, err
		}
	}
	p.InsertBefore(c, ref)
	return child, nil
}

func (b *treeBuilder) RemoveChild(parent, child engine.NodeID) (engine.NodeID, error) {
	p, err := b.handles.resolve(parent)
	if err != nil {
		return 0, err
	}
	c, err := b.handles.resolve(child)
	if err != nil {
		return 0, err
	}
	p.RemoveChild(c)
	return child, nil
}

func (b *treeBuilder) CloneNode(id engine.NodeID, deep bool) (engine.NodeID, error) {
	n, err := b.handles.resolve(id)
	if err != nil {
		return 0, err
	}
	return b.handles.register(n.Clone(deep)), nil
}

func (b *treeBuilder) ReparentChildren(id, newParent engine.NodeID) error {
	n, err := b.handles.resolve(id)
	if err != nil {
		return err
	}
	np, err := b.handles.resolve(newParent)
	if err != nil {
		return err
	}
	n.ReparentChildrenTo(np)
	return nil
}

func (b *treeBuilder) GetParent(id engine.NodeID, elementOnly bool) (engine.NodeID, error) {
	n, err := b.handles.resolve(id)
	if err != nil {
		return 0, err
	}
	parent := n.Parent
	if elementOnly {
		parent = n.ParentElement()
	}
	if parent == nil {
		return 0, nil
	}
	if pid, ok := b.handles.lookup(parent); ok {
		return pid, nil
	}
	return b.handles.register(parent), nil
}

func (b *treeBuilder) HasChildren(id engine.NodeID) (bool, error) {
	n, err := b.handles.resolve(id)
	if err != nil {
		return false, err
	}
	return n.HasChildren(), nil
}

func (b *treeBuilder) FormAssociate(form, node engine.NodeID) error {
	f, err := b.handles.resolve(form)
	if err != nil {
		return err
	}
	n, err := b.handles.resolve(node)
	if err != nil {
		return err
	}
	n.Form = f
	return nil
}

func (b *treeBuilder) AddAttributes(id engine.NodeID, attrs []engine.Attr) error {
	n, err := b.handles.resolve(id)
	if err != nil {
		return err
	}
	for _, a := range attrs {
		attr, err := convertAttr(a)
		if err != nil {
			return err
		}
		n.SetAttributeFromParser(attr)
	}
	return nil
}

func (b *treeBuilder) SetQuirksMode(mode engine.QuirksMode) error {
	switch mode {
	case engine.NoQuirks:
		b.doc.SetQuirksMode(htmldoc.NoQuirks)
	case engine.LimitedQuirks:
		b.doc.SetQuirksMode(htmldoc.LimitedQuirks)
	case engine.FullQuirks:
		b.doc.SetQuirksMode(htmldoc.Quirks)
	default:
		return fmt.Errorf("%w: quirks mode %d", ErrContract, mode)
	}
	return nil
}

func (b *treeBuilder) EncodingChange(name string) error {
	// Re-decoding of already-consumed bytes is out of scope; the detected
	// name is recorded for downstream consumers.
	b.doc.SetEncoding(name)
	return nil
}

// CompleteScript is the single hand-off point from synchronous tree
// construction to asynchronous script discovery. It never blocks on the
// pipeline.
func (b *treeBuilder) CompleteScript(id engine.NodeID) error {
	n, err := b.handles.resolve(id)
	if err != nil {
		return err
	}
	if !n.IsJavaScript() {
		return nil
	}
	if src, ok := n.SrcAttr(); ok {
		u, err := b.resolveURL(src)
		if err != nil {
			b.logger.Debug("script src did not parse", "src", src, "error", err)
			return nil
		}
		b.scripts.enqueueExternal(u)
		return nil
	}
	b.scripts.enqueueInline(n.ChildTextContent(), b.baseURL)
	return nil
}

// CompleteStyle is intentionally a no-op: style-sheet activation is an
// external collaborator's responsibility.
func (b *treeBuilder) CompleteStyle(engine.NodeID) error { return nil }

func (b *treeBuilder) resolveURL(raw string) (*url.URL, error) {
	if b.baseURL != nil {
		return b.baseURL.Parse(raw)
	}
	return url.Parse(raw)
}

func elementNamespaceURL(ns engine.NamespaceID) (string, error) {
	switch ns {
	case engine.NamespaceHTML:
		return htmldoc.NamespaceHTML, nil
	case engine.NamespaceMathML:
		return htmldoc.NamespaceMathML, nil
	case engine.NamespaceSVG:
		return htmldoc.NamespaceSVG, nil
	}
	return "", fmt.Errorf("%w: element namespace %v", ErrContract, ns)
}

func convertAttr(a engine.Attr) (htmldoc.Attr, error) {
	out := htmldoc.Attr{Key: a.Name, Value: a.Value}
	switch a.Namespace {
	case engine.NamespaceNone:
	case engine.NamespaceXLink:
		out.Namespace = htmldoc.NamespaceXLink
		out.Prefix = "xlink"
	case engine.NamespaceXML:
		out.Namespace = htmldoc.NamespaceXML
		out.Prefix = "xml"
	case engine.NamespaceXMLNS:
		out.Namespace = htmldoc.NamespaceXMLNS
		out.Prefix = "xmlns"
	default:
		return htmldoc.Attr{}, fmt.Errorf("%w: attribute namespace %v", ErrContract, a.Namespace)
	}
	return out, nil
}
