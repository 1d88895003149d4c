package etree_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/svgspell"
	"github.com/fwojciec/svgspell/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const drawing = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<!-- Created with Inkscape -->
<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" width="210mm" height="297mm">
  <g inkscape:label="Layer 1" id="layer1">
    <text x="10" y="20" id="text1"><tspan id="a" x="10" y="20">helo world</tspan></text>
    <text x="10" y="40" id="text2">
      <tspan id="b" x="10" y="40" style="font-weight:bold">hello world</tspan>
      <tspan id="c"/>
    </text>
  </g>
  <g>
    <text><tspan id="d">outer <tspan id="e">inner</tspan> tail</tspan></text>
  </g>
</svg>
`

func writeDrawing(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "drawing.svg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func texts(doc svgspell.Document) []string {
	var out []string
	for _, n := range doc.TextNodes() {
		text, ok := n.Text()
		if !ok {
			text = "<absent>"
		}
		out = append(out, text)
	}
	return out
}

func TestDocumentStore_Open(t *testing.T) {
	t.Parallel()

	t.Run("selects tspan elements in document order", func(t *testing.T) {
		t.Parallel()

		store := etree.NewDocumentStore()

		doc, err := store.Open(context.Background(), writeDrawing(t, drawing))

		require.NoError(t, err)
		assert.Equal(t, []string{"helo world", "hello world", "<absent>", "outer ", "inner"}, texts(doc))
	})

	t.Run("ignores tspan outside the SVG namespace", func(t *testing.T) {
		t.Parallel()

		content := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:x="urn:other">` +
			`<text><tspan>kept</tspan><x:tspan>foreign</x:tspan></text></svg>`
		store := etree.NewDocumentStore()

		doc, err := store.Open(context.Background(), writeDrawing(t, content))

		require.NoError(t, err)
		assert.Equal(t, []string{"kept"}, texts(doc))
	})

	t.Run("document without SVG namespace has no text nodes", func(t *testing.T) {
		t.Parallel()

		store := etree.NewDocumentStore()

		doc, err := store.Open(context.Background(), writeDrawing(t, `<svg><tspan>plain</tspan></svg>`))

		require.NoError(t, err)
		assert.Empty(t, doc.TextNodes())
	})

	t.Run("empty namespace matches any element", func(t *testing.T) {
		t.Parallel()

		store := etree.NewDocumentStore(etree.WithNamespace(""))

		doc, err := store.Open(context.Background(), writeDrawing(t, `<svg><tspan>plain</tspan></svg>`))

		require.NoError(t, err)
		assert.Equal(t, []string{"plain"}, texts(doc))
	})

	t.Run("custom tag", func(t *testing.T) {
		t.Parallel()

		store := etree.NewDocumentStore(etree.WithTag("title"))

		doc, err := store.Open(context.Background(), writeDrawing(t,
			`<svg xmlns="http://www.w3.org/2000/svg"><title>Drawng</title><text><tspan>x</tspan></text></svg>`))

		require.NoError(t, err)
		assert.Equal(t, []string{"Drawng"}, texts(doc))
	})

	t.Run("malformed content is a format error", func(t *testing.T) {
		t.Parallel()

		store := etree.NewDocumentStore()

		_, err := store.Open(context.Background(), writeDrawing(t, `<svg><</svg>`))

		require.Error(t, err)
		assert.Equal(t, svgspell.EFORMAT, svgspell.ErrorCode(err))
	})

	t.Run("empty file is a format error", func(t *testing.T) {
		t.Parallel()

		store := etree.NewDocumentStore()

		_, err := store.Open(context.Background(), writeDrawing(t, ""))

		require.Error(t, err)
		assert.Equal(t, svgspell.EFORMAT, svgspell.ErrorCode(err))
	})

	t.Run("missing file is invalid", func(t *testing.T) {
		t.Parallel()

		store := etree.NewDocumentStore()

		_, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "missing.svg"))

		require.Error(t, err)
		assert.Equal(t, svgspell.EINVALID, svgspell.ErrorCode(err))
	})
}

func TestDocumentStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("unmodified document round-trips byte for byte", func(t *testing.T) {
		t.Parallel()

		path := writeDrawing(t, drawing)
		store := etree.NewDocumentStore()
		doc, err := store.Open(context.Background(), path)
		require.NoError(t, err)

		require.NoError(t, store.Save(context.Background(), path, doc))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, drawing, string(content))
	})

	t.Run("writes only the edited text", func(t *testing.T) {
		t.Parallel()

		path := writeDrawing(t, drawing)
		store := etree.NewDocumentStore()
		doc, err := store.Open(context.Background(), path)
		require.NoError(t, err)

		doc.TextNodes()[0].SetText("hello world")
		require.NoError(t, store.Save(context.Background(), path, doc))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		want := strings.Replace(drawing, ">helo world<", ">hello world<", 1)
		assert.Equal(t, want, string(content))
	})

	t.Run("leaves quotes in other nodes unescaped", func(t *testing.T) {
		t.Parallel()

		content := `<svg xmlns="http://www.w3.org/2000/svg"><text>` +
			`<tspan id="a">don't say "hi"</tspan><tspan id="b">helo</tspan>` +
			`</text></svg>`
		path := writeDrawing(t, content)
		store := etree.NewDocumentStore()
		doc, err := store.Open(context.Background(), path)
		require.NoError(t, err)

		doc.TextNodes()[1].SetText("hello")
		require.NoError(t, store.Save(context.Background(), path, doc))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		want := strings.Replace(content, ">helo<", ">hello<", 1)
		assert.Equal(t, want, string(got))
	})

	t.Run("editing text keeps child elements and tail", func(t *testing.T) {
		t.Parallel()

		path := writeDrawing(t, drawing)
		store := etree.NewDocumentStore()
		doc, err := store.Open(context.Background(), path)
		require.NoError(t, err)

		doc.TextNodes()[3].SetText("outside ")
		require.NoError(t, store.Save(context.Background(), path, doc))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `<tspan id="d">outside <tspan id="e">inner</tspan> tail</tspan>`)
	})

	t.Run("preserves CDATA sections", func(t *testing.T) {
		t.Parallel()

		content := `<svg xmlns="http://www.w3.org/2000/svg"><style><![CDATA[.a > .b {}]]></style><text><tspan>ok</tspan></text></svg>`
		path := writeDrawing(t, content)
		store := etree.NewDocumentStore()
		doc, err := store.Open(context.Background(), path)
		require.NoError(t, err)

		require.NoError(t, store.Save(context.Background(), path, doc))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, content, string(got))
	})

	t.Run("rejects foreign documents", func(t *testing.T) {
		t.Parallel()

		store := etree.NewDocumentStore()

		err := store.Save(context.Background(), filepath.Join(t.TempDir(), "x.svg"), foreignDocument{})

		require.Error(t, err)
		assert.Equal(t, svgspell.EINVALID, svgspell.ErrorCode(err))
	})

	t.Run("unwritable directory is a commit error", func(t *testing.T) {
		t.Parallel()

		store := etree.NewDocumentStore()
		doc, err := store.Decode(strings.NewReader(drawing))
		require.NoError(t, err)

		err = store.Save(context.Background(), filepath.Join(t.TempDir(), "missing-dir", "x.svg"), doc)

		require.Error(t, err)
		assert.Equal(t, svgspell.ECOMMIT, svgspell.ErrorCode(err))
	})
}

func TestDocument_WriteTo(t *testing.T) {
	t.Parallel()

	store := etree.NewDocumentStore()
	doc, err := store.Decode(strings.NewReader(drawing))
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = doc.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, drawing, buf.String())
}

func TestTextNode_Path(t *testing.T) {
	t.Parallel()

	store := etree.NewDocumentStore()
	doc, err := store.Decode(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><text><tspan>a</tspan></text></svg>`))
	require.NoError(t, err)

	node, ok := doc.TextNodes()[0].(*etree.TextNode)
	require.True(t, ok)
	assert.Equal(t, "/svg/text/tspan", node.Path())
}

type foreignDocument struct{}

func (foreignDocument) TextNodes() []svgspell.TextNode { return nil }
