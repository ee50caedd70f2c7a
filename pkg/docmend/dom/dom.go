package dom

// NodeType discriminates the node variants that can appear in a document tree.
type NodeType int

const (
	// ElementNode is a regular XML element.
	ElementNode NodeType = iota
	// TextNode is character data between elements.
	TextNode
	// CommentNode is an XML comment.
	CommentNode
	// ProcInstNode is a processing instruction other than the XML declaration.
	ProcInstNode
	// DirectiveNode is a directive such as a DOCTYPE declaration.
	DirectiveNode
)

// Attr is a single attribute with its qualified name preserved exactly as
// written in the source, e.g. "w:id", "xml:space" or "xmlns:w15".
type Attr struct {
	Name  string
	Value string
}

// Node is one node of a parsed XML part. Elements carry a qualified tag name
// (prefix included, e.g. "w:bookmarkStart"), an ordered attribute list and an
// ordered child list. Every node has at most one parent; detaching a node from
// its parent is the only way it leaves the tree.
type Node struct {
	Type NodeType

	// Tag is the qualified element name. Only set for ElementNode.
	Tag string

	// Data holds character data for text, comment and directive nodes, and
	// the instruction body for processing instructions.
	Data string

	// Target is the processing instruction target. Only set for ProcInstNode.
	Target string

	Attrs    []Attr
	Children []*Node

	parent *Node
}

// Parent returns the node's owning parent, or nil for a detached node or the
// document root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Attr returns the value of the attribute with the given qualified name.
// The second result reports whether the attribute is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the attribute with the given qualified name, replacing its
// value in place if present and appending it otherwise.
func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// Detach removes the node from its parent's child list. Detaching a node that
// has no parent is a no-op.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.Children {
		if c == n {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// AppendChild attaches child as the last child of n. A child already owned by
// another node is detached from it first.
func (n *Node) AppendChild(child *Node) {
	if child.parent != nil {
		child.Detach()
	}
	child.parent = n
	n.Children = append(n.Children, child)
}

// Elements returns the node's immediate element children in document order.
func (n *Node) Elements() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Type == ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// Text returns the concatenation of the node's immediate text children.
// Nested element text is not included.
func (n *Node) Text() string {
	var out string
	for _, c := range n.Children {
		if c.Type == TextNode {
			out += c.Data
		}
	}
	return out
}

// Descendants returns every element strictly below n whose qualified tag name
// equals tag, in document order.
func (n *Node) Descendants(tag string) []*Node {
	var out []*Node
	n.walk(func(el *Node) {
		if el.Tag == tag {
			out = append(out, el)
		}
	})
	return out
}

// walk visits every descendant element of n in document (pre-order) order.
func (n *Node) walk(fn func(*Node)) {
	for _, c := range n.Children {
		if c.Type != ElementNode {
			continue
		}
		fn(c)
		c.walk(fn)
	}
}

// Document is a parsed XML part: the root element plus everything around it
// that must survive a rewrite (XML declaration, comments and processing
// instructions outside the root).
type Document struct {
	// Decl is the document's XML declaration exactly as reconstructed from
	// the source, e.g. `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`.
	// Empty when the source had none; an empty Decl is not serialized.
	Decl string

	// Prolog holds comment, processing instruction and directive nodes that
	// appeared before the root element, Epilog the ones after it.
	Prolog []*Node
	Epilog []*Node

	Root *Node
}

// Descendants returns every element in the document whose qualified tag name
// equals tag, in document order, including the root element itself.
func (d *Document) Descendants(tag string) []*Node {
	if d.Root == nil {
		return nil
	}
	var out []*Node
	if d.Root.Tag == tag {
		out = append(out, d.Root)
	}
	return append(out, d.Root.Descendants(tag)...)
}
