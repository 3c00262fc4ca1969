// CLAUDE:SUMMARY Linked-tree Node type, namespace constants, and tree editing operations (append, insert, remove, reparent, clone).
// Package htmldoc is the document object model populated during parsing.
//
// It is deliberately small: typed nodes, exclusive parent-owns-child tree
// structure, a tag-to-kind element factory, and a trusted attribute path for
// parser-originated attributes. Everything a full DOM adds on top (mutation
// observers, reflection, events) lives outside this package.
//
// Ownership: every node belongs to exactly one Document and occupies at most
// one tree position. Attachment operations detach the node from any previous
// parent first, so a node can never appear twice.
package htmldoc

// Namespace URLs for elements and attributes.
const (
	NamespaceHTML   = "http://www.w3.org/1999/xhtml"
	NamespaceMathML = "http://www.w3.org/1998/Math/MathML"
	NamespaceSVG    = "http://www.w3.org/2000/svg"
	NamespaceXLink  = "http://www.w3.org/1999/xlink"
	NamespaceXML    = "http://www.w3.org/XML/1998/namespace"
	NamespaceXMLNS  = "http://www.w3.org/2000/xmlns/"
)

// NodeType discriminates the Node variants.
type NodeType int

const (
	DocumentNode NodeType = iota
	DoctypeNode
	ElementNode
	TextNode
	CommentNode
)

// Attr is a namespace-qualified attribute.
type Attr struct {
	Namespace string // attribute namespace URL, empty for none
	Prefix    string // serialization prefix ("xlink", "xml", "xmlns"), empty for none
	Key       string
	Value     string
}

// Doctype holds the identifiers of a doctype node.
type Doctype struct {
	Name     string
	PublicID string
	SystemID string
}

// Node is a node in the document tree. A single struct covers all variants;
// Type selects which fields are meaningful.
type Node struct {
	Type NodeType

	Parent      *Node
	FirstChild  *Node
	LastChild   *Node
	PrevSibling *Node
	NextSibling *Node

	// Owner is the document this node belongs to. Set at construction,
	// never changes.
	Owner *Document

	// Data holds the tag name for elements, the payload for text and
	// comment nodes, and the doctype name for doctype nodes.
	Data string

	// Element fields.
	Namespace    string // element namespace URL
	Kind         ElementKind
	HeadingLevel int // 1-6 for KindHeading, 0 otherwise
	Attrs        []Attr
	Form         *Node // associated form element, set by the parser

	Doctype *Doctype
}

// NewText creates an unattached text node owned by doc.
func NewText(doc *Document, data string) *Node {
	return &Node{Type: TextNode, Owner: doc, Data: data}
}

// NewComment creates an unattached comment node owned by doc.
func NewComment(doc *Document, data string) *Node {
	return &Node{Type: CommentNode, Owner: doc, Data: data}
}

// NewDoctype creates an unattached doctype node owned by doc.
func NewDoctype(doc *Document, name, publicID, systemID string) *Node {
	return &Node{
		Type:    DoctypeNode,
		Owner:   doc,
		Data:    name,
		Doctype: &Doctype{Name: name, PublicID: publicID, SystemID: systemID},
	}
}

// AppendChild appends c as the last child of n, detaching it from any
// previous parent first.
func (n *Node) AppendChild(c *Node) {
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	c.Parent = n
	c.PrevSibling = n.LastChild
	c.NextSibling = nil
	if n.LastChild != nil {
		n.LastChild.NextSibling = c
	} else {
		n.FirstChild = c
	}
	n.LastChild = c
}

// InsertBefore inserts newChild into n's children immediately before
// oldChild. A nil oldChild appends.
func (n *Node) InsertBefore(newChild, oldChild *Node) {
	if oldChild == nil {
		n.AppendChild(newChild)
		return
	}
	if oldChild.Parent != n {
		return
	}
	if newChild.Parent != nil {
		newChild.Parent.RemoveChild(newChild)
	}
	newChild.Parent = n
	newChild.NextSibling = oldChild
	newChild.PrevSibling = oldChild.PrevSibling
	if oldChild.PrevSibling != nil {
		oldChild.PrevSibling.NextSibling = newChild
	} else {
		n.FirstChild = newChild
	}
	oldChild.PrevSibling = newChild
}

// RemoveChild detaches c from n. No-op if c is not a child of n.
func (n *Node) RemoveChild(c *Node) {
	if c.Parent != n {
		return
	}
	if c.PrevSibling != nil {
		c.PrevSibling.NextSibling = c.NextSibling
	} else {
		n.FirstChild = c.NextSibling
	}
	if c.NextSibling != nil {
		c.NextSibling.PrevSibling = c.PrevSibling
	} else {
		n.LastChild = c.PrevSibling
	}
	c.Parent = nil
	c.PrevSibling = nil
	c.NextSibling = nil
}

// ReparentChildrenTo moves all of n's children to newParent, preserving
// their order.
func (n *Node) ReparentChildrenTo(newParent *Node) {
	for n.FirstChild != nil {
		newParent.AppendChild(n.FirstChild)
	}
}

// HasChildren reports whether n has at least one child.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// Children returns the child nodes in document order.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// ParentElement returns the nearest ancestor element, or nil.
func (n *Node) ParentElement() *Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == ElementNode {
			return p
		}
	}
	return nil
}

// Clone copies n. With deep set, the whole subtree is copied; otherwise
// only the node itself. The clone is unattached.
func (n *Node) Clone(deep bool) *Node {
	c := &Node{
		Type:         n.Type,
		Owner:        n.Owner,
		Data:         n.Data,
		Namespace:    n.Namespace,
		Kind:         n.Kind,
		HeadingLevel: n.HeadingLevel,
	}
	if len(n.Attrs) > 0 {
		c.Attrs = append([]Attr(nil), n.Attrs...)
	}
	if n.Doctype != nil {
		dt := *n.Doctype
		c.Doctype = &dt
	}
	if deep {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			c.AppendChild(child.Clone(true))
		}
	}
	return c
}

// ChildTextContent concatenates the data of n's direct text-node children
// in document order. Non-text children are skipped.
func (n *Node) ChildTextContent() string {
	var out string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == TextNode {
			out += c.Data
		}
	}
	return out
}

// SetAttributeFromParser attaches a parser-originated attribute. This is the
// trusted path: no validation, no observer notification, and the first
// occurrence of a (namespace, key) pair wins, matching tree-construction
// semantics for duplicate attributes.
func (n *Node) SetAttributeFromParser(a Attr) {
	for _, existing := range n.Attrs {
		if existing.Namespace == a.Namespace && existing.Key == a.Key {
			return
		}
	}
	n.Attrs = append(n.Attrs, a)
}

// Attr returns the value of the attribute with the given key in no
// namespace, and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Namespace == "" && a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
