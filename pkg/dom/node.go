package dom

import "fmt"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // <div>, <button>, etc.
	KindText                // Plain text node
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Attrs holds element attributes.
type Attrs map[string]string

// Node is a single node in the live display tree.
//
// A node has at most one parent at any time. Structural mutations go
// through the methods below so that parent linkage, document membership,
// and removal observation stay consistent.
type Node struct {
	kind     Kind
	tag      string
	attrs    Attrs
	text     string
	parent   *Node
	children []*Node
	doc      *Document
}

// El creates an element node. Children may be *Node, []*Node, Attrs, or
// string (converted to a text node); nil entries are skipped.
func El(tag string, args ...any) *Node {
	n := &Node{
		kind:  KindElement,
		tag:   tag,
		attrs: make(Attrs),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attrs:
			for k, val := range v {
				n.attrs[k] = val
			}
		case *Node:
			if v != nil {
				n.AppendChild(v)
			}
		case []*Node:
			for _, c := range v {
				if c != nil {
					n.AppendChild(c)
				}
			}
		case string:
			n.AppendChild(Text(v))
		default:
			panic(fmt.Sprintf("dom.El: unsupported argument type %T", arg))
		}
	}

	return n
}

// Text creates a text node.
func Text(content string) *Node {
	return &Node{
		kind: KindText,
		text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// Tag returns the element tag name, or "" for text nodes.
func (n *Node) Tag() string { return n.tag }

// Text returns the text content of a text node.
func (n *Node) Text() string { return n.text }

// Attr returns the value of the named attribute, or "".
func (n *Node) Attr(key string) string {
	if n.attrs == nil {
		return ""
	}
	return n.attrs[key]
}

// SetAttr sets an attribute on an element node.
func (n *Node) SetAttr(key, value string) {
	if n.kind != KindElement {
		return
	}
	if n.attrs == nil {
		n.attrs = make(Attrs)
	}
	n.attrs[key] = value
}

// Attrs returns a copy of the node's attributes.
func (n *Node) Attrs() Attrs {
	out := make(Attrs, len(n.attrs))
	for k, v := range n.attrs {
		out[k] = v
	}
	return out
}

// Parent returns the node's parent, or nil if detached or a tree root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in sibling order.
// The returned slice is a copy; mutating it does not affect the tree.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Document returns the document this node is attached to, or nil.
func (n *Node) Document() *Document { return n.doc }

// IsAttached reports whether the node is part of a document tree.
func (n *Node) IsAttached() bool { return n.doc != nil }

// AppendChild adds c as the last child of n. If c already has a parent it
// is silently detached first; moving a node is not a removal event.
func (n *Node) AppendChild(c *Node) {
	if c == nil || c == n {
		return
	}
	if c.parent != nil {
		c.parent.detach(c)
	}
	c.parent = n
	c.setDocument(n.doc)
	n.children = append(n.children, c)
}

// RemoveChild detaches c from n and delivers a removal batch containing c
// to the owning document's observers. No-op if c is not a child of n.
func (n *Node) RemoveChild(c *Node) {
	if c == nil || c.parent != n {
		return
	}
	doc := n.doc
	n.detach(c)
	c.parent = nil
	c.setDocument(nil)
	if doc != nil {
		doc.deliverRemovals([]*Node{c})
	}
}

// Remove detaches n from its parent, delivering a removal batch.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// ReplaceWith swaps n for repl under the same parent at the same sibling
// index, preserving sibling order. The old node is detached without a
// removal event: a replacement keeps the logical slot alive. Returns false
// if n has no parent or repl is nil.
func (n *Node) ReplaceWith(repl *Node) bool {
	if repl == nil || repl == n || n.parent == nil {
		return false
	}

	parent := n.parent
	idx := -1
	for i, c := range parent.children {
		if c == n {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	if repl.parent != nil {
		repl.parent.detach(repl)
	}

	parent.children[idx] = repl
	repl.parent = parent
	repl.setDocument(parent.doc)
	n.parent = nil
	n.setDocument(nil)
	return true
}

// detach removes c from n's child slice without touching c's own links.
func (n *Node) detach(c *Node) {
	for i, child := range n.children {
		if child == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// setDocument propagates document membership through the subtree.
func (n *Node) setDocument(doc *Document) {
	n.doc = doc
	for _, c := range n.children {
		c.setDocument(doc)
	}
}
