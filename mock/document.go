package mock

import (
	"context"

	"github.com/fwojciec/svgspell"
)

var _ svgspell.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of svgspell.DocumentStore.
type DocumentStore struct {
	OpenFn func(ctx context.Context, path string) (svgspell.Document, error)
	SaveFn func(ctx context.Context, path string, doc svgspell.Document) error
}

func (s *DocumentStore) Open(ctx context.Context, path string) (svgspell.Document, error) {
	return s.OpenFn(ctx, path)
}

func (s *DocumentStore) Save(ctx context.Context, path string, doc svgspell.Document) error {
	return s.SaveFn(ctx, path, doc)
}

var _ svgspell.Document = (*Document)(nil)

// Document is an in-memory svgspell.Document.
type Document struct {
	Nodes []*TextNode
}

// NewDocument returns a document with one node per text. A nil text pointer
// produces a node without text.
func NewDocument(texts ...*string) *Document {
	doc := &Document{}
	for _, text := range texts {
		node := &TextNode{}
		if text != nil {
			node.Value = *text
			node.Present = true
		}
		doc.Nodes = append(doc.Nodes, node)
	}
	return doc
}

func (d *Document) TextNodes() []svgspell.TextNode {
	nodes := make([]svgspell.TextNode, len(d.Nodes))
	for i, n := range d.Nodes {
		nodes[i] = n
	}
	return nodes
}

// Texts returns the current text of every node.
func (d *Document) Texts() []string {
	texts := make([]string, len(d.Nodes))
	for i, n := range d.Nodes {
		texts[i] = n.Value
	}
	return texts
}

var _ svgspell.TextNode = (*TextNode)(nil)

// TextNode is an in-memory svgspell.TextNode that counts writes.
type TextNode struct {
	Value   string
	Present bool
	Sets    int
}

func (n *TextNode) Text() (string, bool) {
	return n.Value, n.Present
}

func (n *TextNode) SetText(text string) {
	n.Value = text
	n.Present = true
	n.Sets++
}
