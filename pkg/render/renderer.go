package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/glint-ui/glint/pkg/dom"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes dom.Node trees to HTML.
type Renderer struct {
	config Config
}

// New creates a Renderer with the given configuration.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// ToString renders a node tree to an HTML string.
func (r *Renderer) ToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.ToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToWriter streams a node tree to the given writer.
func (r *Renderer) ToWriter(w io.Writer, node *dom.Node) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *dom.Node, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind() {
	case dom.KindElement:
		return r.renderElement(w, node, depth)
	case dom.KindText:
		return r.renderText(w, node)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind())
	}
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *dom.Node, depth int) error {
	tag := node.Tag()

	if r.config.Pretty && depth > 0 && !isInlineElement(tag) {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := r.renderAttrs(w, node.Attrs()); err != nil {
		return err
	}

	if isVoidElement(tag) {
		_, err := io.WriteString(w, ">")
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	children := node.Children()
	blockChildren := r.config.Pretty && hasBlockChildren(children)
	for _, c := range children {
		if blockChildren {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := r.renderNode(w, c, depth+1); err != nil {
			return err
		}
	}
	if blockChildren {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</"+tag+">")
	return err
}

// renderAttrs writes attributes sorted by key for deterministic output.
func (r *Renderer) renderAttrs(w io.Writer, attrs dom.Attrs) error {
	if len(attrs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(w, ` %s="%s"`, k, escapeAttr(attrs[k])); err != nil {
			return err
		}
	}
	return nil
}

// renderText writes an escaped text node.
func (r *Renderer) renderText(w io.Writer, node *dom.Node) error {
	_, err := io.WriteString(w, escapeHTML(node.Text()))
	return err
}

func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	_, err := io.WriteString(w, strings.Repeat(r.config.Indent, depth))
	return err
}

// hasBlockChildren reports whether any child is a non-inline element.
func hasBlockChildren(children []*dom.Node) bool {
	for _, c := range children {
		if c.Kind() == dom.KindElement && !isInlineElement(c.Tag()) {
			return true
		}
	}
	return false
}
