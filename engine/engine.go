// CLAUDE:SUMMARY Tree-construction engine contract: node handles, namespace ids, tag/doctype tokens, and the TreeHandler callback set.
// Package engine defines the contract between HTML tree construction and
// the document tree, and provides an engine implementation backed by the
// golang.org/x/net/html parsing algorithm.
//
// The engine references nodes only through opaque NodeID handles handed to
// it by the TreeHandler. It never owns a node: RefNode and UnrefNode exist
// for contract symmetry and are documented no-ops, since node lifetime is
// governed entirely by the tree's exclusive parent-owns-child ownership.
//
// Every TreeHandler method that returns an error is a potential fatal
// condition: the engine trusts the handler and aborts the whole parse on
// the first error instead of attempting recovery.
package engine

// NodeID is an opaque handle to a tree node. The zero value never denotes
// a live node.
type NodeID uint64

// NamespaceID identifies a namespace in engine tokens. The enumeration is
// closed: a handler receiving a value outside it has hit a contract
// violation.
type NamespaceID int

const (
	NamespaceNone NamespaceID = iota
	NamespaceHTML
	NamespaceMathML
	NamespaceSVG
	NamespaceXLink
	NamespaceXML
	NamespaceXMLNS
)

func (ns NamespaceID) String() string {
	switch ns {
	case NamespaceNone:
		return "none"
	case NamespaceHTML:
		return "html"
	case NamespaceMathML:
		return "mathml"
	case NamespaceSVG:
		return "svg"
	case NamespaceXLink:
		return "xlink"
	case NamespaceXML:
		return "xml"
	case NamespaceXMLNS:
		return "xmlns"
	}
	return "invalid"
}

// QuirksMode is the compatibility mode the engine derives from the doctype.
type QuirksMode int

const (
	NoQuirks QuirksMode = iota
	LimitedQuirks
	FullQuirks
)

// Attr is an attribute token observed on a start tag.
type Attr struct {
	Namespace NamespaceID
	Name      string
	Value     string
}

// Tag is an element start-tag token.
type Tag struct {
	Name      string
	Namespace NamespaceID
	Attrs     []Attr
}

// Doctype is a doctype token.
type Doctype struct {
	Name     string
	PublicID string
	SystemID string
}

// TreeHandler is the full callback contract tree construction requires.
// All methods are invoked synchronously on the parsing goroutine, in
// document order. Creation methods return the new node's handle without
// attaching it; attachment follows as a separate call.
type TreeHandler interface {
	CreateComment(data string) (NodeID, error)
	CreateDoctype(dt Doctype) (NodeID, error)
	CreateElement(tag Tag) (NodeID, error)
	CreateText(data string) (NodeID, error)

	// RefNode and UnrefNode are no-ops by contract: the engine never
	// owns a node, only references it.
	RefNode(id NodeID)
	UnrefNode(id NodeID)

	// AppendChild attaches child under parent and echoes the child
	// handle back, which the engine expects.
	AppendChild(parent, child NodeID) (NodeID, error)
	InsertBefore(parent, child, before NodeID) (NodeID, error)
	RemoveChild(parent, child NodeID) (NodeID, error)
	CloneNode(id NodeID, deep bool) (NodeID, error)
	ReparentChildren(id, newParent NodeID) error
	// GetParent returns the parent handle, or zero if there is none
	// (or none satisfying elementOnly).
	GetParent(id NodeID, elementOnly bool) (NodeID, error)
	HasChildren(id NodeID) (bool, error)
	FormAssociate(form, node NodeID) error
	AddAttributes(id NodeID, attrs []Attr) error

	SetQuirksMode(mode QuirksMode) error
	EncodingChange(name string) error

	// CompleteScript fires once a script element's construction is
	// structurally complete; this is the hand-off point to script
	// discovery.
	CompleteScript(id NodeID) error
	// CompleteStyle fires for completed style elements. Style-sheet
	// activation is an external concern, so handlers typically no-op.
	CompleteStyle(id NodeID) error
}
