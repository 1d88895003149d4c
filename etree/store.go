// Package etree implements svgspell.DocumentStore for SVG files using
// github.com/beevik/etree.
package etree

import (
	"context"
	"io"
	"os"

	"github.com/beevik/etree"
	"github.com/fwojciec/svgspell"
	"github.com/fwojciec/svgspell/fs"
)

// SVGNamespace is the namespace URI of SVG elements.
const SVGNamespace = "http://www.w3.org/2000/svg"

// DefaultTag is the element whose text is spell-checked.
const DefaultTag = "tspan"

// Ensure DocumentStore implements svgspell.DocumentStore at compile time.
var _ svgspell.DocumentStore = (*DocumentStore)(nil)

// DocumentStore reads and writes SVG files.
type DocumentStore struct {
	tag       string
	namespace string
}

// Option configures a DocumentStore.
type Option func(*DocumentStore)

// WithTag selects elements with the given local name. Defaults to tspan.
func WithTag(tag string) Option {
	return func(s *DocumentStore) {
		s.tag = tag
	}
}

// WithNamespace selects only elements in the given namespace URI. An empty
// URI matches elements in any namespace. Defaults to SVGNamespace.
func WithNamespace(uri string) Option {
	return func(s *DocumentStore) {
		s.namespace = uri
	}
}

// NewDocumentStore creates a DocumentStore.
func NewDocumentStore(opts ...Option) *DocumentStore {
	s := &DocumentStore{
		tag:       DefaultTag,
		namespace: SVGNamespace,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open parses the file at path.
// Returns EINVALID if the file cannot be read and EFORMAT if it is not
// well-formed XML.
func (s *DocumentStore) Open(ctx context.Context, path string) (svgspell.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, svgspell.Errorf(svgspell.EINVALID, "opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := s.Decode(f)
	if err != nil {
		return nil, svgspell.Errorf(svgspell.EFORMAT, "parsing %s: %w", path, err)
	}
	return doc, nil
}

// Decode parses a document from r.
// Returns EFORMAT if the content is not well-formed XML.
func (s *DocumentStore) Decode(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	doc.WriteSettings.CanonicalText = true

	if _, err := doc.ReadFrom(r); err != nil {
		return nil, svgspell.Errorf(svgspell.EFORMAT, "malformed XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, svgspell.Errorf(svgspell.EFORMAT, "no root element")
	}

	d := &Document{doc: doc}
	for _, el := range root.ChildElements() {
		d.collect(el, s.tag, s.namespace)
	}
	return d, nil
}

// Save writes doc to path, replacing the file atomically.
// Returns ECOMMIT if the file cannot be written.
func (s *DocumentStore) Save(ctx context.Context, path string, doc svgspell.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d, ok := doc.(*Document)
	if !ok {
		return svgspell.Errorf(svgspell.EINVALID, "document %T was not opened by this store", doc)
	}

	if err := fs.WriteFile(path, func(w io.Writer) error {
		_, err := d.WriteTo(w)
		return err
	}); err != nil {
		return svgspell.Errorf(svgspell.ECOMMIT, "writing %s: %w", path, err)
	}
	return nil
}
