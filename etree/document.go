package etree

import (
	"io"

	"github.com/beevik/etree"
	"github.com/fwojciec/svgspell"
)

// Ensure Document implements svgspell.Document at compile time.
var _ svgspell.Document = (*Document)(nil)

// Document is a parsed SVG tree together with its selected text nodes.
type Document struct {
	doc   *etree.Document
	nodes []svgspell.TextNode
}

// TextNodes returns the selected elements in document order.
func (d *Document) TextNodes() []svgspell.TextNode {
	return d.nodes
}

// WriteTo serializes the tree to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.doc.WriteTo(w)
}

// collect appends el and its matching descendants in pre-order.
func (d *Document) collect(el *etree.Element, tag, namespace string) {
	if el.Tag == tag && (namespace == "" || el.NamespaceURI() == namespace) {
		d.nodes = append(d.nodes, &TextNode{el: el})
	}
	for _, child := range el.ChildElements() {
		d.collect(child, tag, namespace)
	}
}

// Ensure TextNode implements svgspell.TextNode at compile time.
var _ svgspell.TextNode = (*TextNode)(nil)

// TextNode is an element whose leading character data is spell-checked.
type TextNode struct {
	el *etree.Element
}

// Text returns the character data before the element's first child element.
// An element without such text reports false.
func (n *TextNode) Text() (string, bool) {
	text := n.el.Text()
	return text, text != ""
}

// SetText replaces the leading character data. Child elements and the text
// following them are left alone.
func (n *TextNode) SetText(text string) {
	n.el.SetText(text)
}

// Path returns the element's absolute path in the tree.
func (n *TextNode) Path() string {
	return n.el.GetPath()
}
