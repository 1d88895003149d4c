package svgspell

import "context"

// TextNode is one text-bearing element of a document.
type TextNode interface {
	// Text returns the element's direct text content. The boolean is false
	// when the element carries no text at all.
	Text() (string, bool)

	// SetText replaces the element's direct text content.
	SetText(text string)
}

// Document is a parsed structured document.
type Document interface {
	// TextNodes returns the text-bearing elements in document order.
	// The sequence is captured once when the document is opened.
	TextNodes() []TextNode
}

// DocumentStore loads and saves documents.
type DocumentStore interface {
	// Open parses the document stored at path.
	// Returns EFORMAT if the content is not well-formed.
	Open(ctx context.Context, path string) (Document, error)

	// Save serializes doc back to path, replacing its previous content.
	// Returns ECOMMIT if the document cannot be written.
	Save(ctx context.Context, path string, doc Document) error
}
