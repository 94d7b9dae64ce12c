// Package dom provides the live display tree that Glint components render
// into.
//
// Unlike a virtual DOM, nodes in this package are the real, mutable tree:
// every Node carries a parent back-pointer, sibling order is significant,
// and structural mutations (removal, in-place replacement) take effect
// immediately. A Document owns one tree and is the integration point for
// removal observation: interested parties register an Observation against a
// specific node reference and are notified when exactly that node is
// detached from the tree.
//
// # Building Trees
//
// Elements are created with variadic factory functions:
//
//	dom.El("div", dom.Attrs{"class": "card"},
//	    dom.El("h1", dom.Text("Title")),
//	    dom.Text("Content"),
//	)
//
// # Observation
//
// Removal notifications are delivered synchronously as one discrete batch
// per mutating operation, and only to observations whose target node is in
// the removed set. Replacing a node via ReplaceWith is not a removal and is
// never observed.
//
// # Lookup
//
// Query finds the first descendant matching a simple selector: a tag name
// ("button"), an id ("#submit"), a class (".active"), or a tag qualified by
// one of those ("button.active").
package dom
