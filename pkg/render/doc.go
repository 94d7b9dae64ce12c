// Package render serializes live dom trees to HTML.
//
// The renderer walks a dom.Node tree and writes escaped HTML. Attribute
// order is sorted for deterministic output, text and attribute values are
// escaped, and void elements (br, img, ...) are written without closing
// tags. Pretty mode indents block-level elements for development use.
package render
