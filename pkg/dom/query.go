package dom

import "strings"

// selector is a parsed simple selector: an optional tag name qualified by
// at most one #id or .class.
type selector struct {
	tag   string
	id    string
	class string
}

// parseSelector splits "tag", "#id", ".class", "tag#id", or "tag.class".
func parseSelector(s string) selector {
	var sel selector
	if i := strings.IndexAny(s, "#."); i >= 0 {
		sel.tag = s[:i]
		rest := s[i:]
		if rest[0] == '#' {
			sel.id = rest[1:]
		} else {
			sel.class = rest[1:]
		}
	} else {
		sel.tag = s
	}
	return sel
}

// matches reports whether n satisfies the selector.
func (sel selector) matches(n *Node) bool {
	if n.kind != KindElement {
		return false
	}
	if sel.tag != "" && n.tag != sel.tag {
		return false
	}
	if sel.id != "" && n.Attr("id") != sel.id {
		return false
	}
	if sel.class != "" && !hasClass(n, sel.class) {
		return false
	}
	return true
}

// hasClass checks for class among the whitespace-separated class list.
func hasClass(n *Node, class string) bool {
	for _, c := range strings.Fields(n.Attr("class")) {
		if c == class {
			return true
		}
	}
	return false
}

// Query returns the first descendant of n (depth-first, document order)
// matching the selector, or nil if none matches. The receiver itself is
// never a match candidate.
func (n *Node) Query(sel string) *Node {
	parsed := parseSelector(sel)
	for _, c := range n.children {
		if found := c.query(parsed); found != nil {
			return found
		}
	}
	return nil
}

func (n *Node) query(sel selector) *Node {
	if sel.matches(n) {
		return n
	}
	for _, c := range n.children {
		if found := c.query(sel); found != nil {
			return found
		}
	}
	return nil
}
