package render

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// MarkdownRenderer turns prompt sections into HTML. Raw HTML in the source is
// passed through; prompt files are repository content.
type MarkdownRenderer struct {
	md goldmark.Markdown
}

func NewMarkdownRenderer() *MarkdownRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
			extension.Strikethrough,
			extension.Table,
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &MarkdownRenderer{md: md}
}

func (r *MarkdownRenderer) Render(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	doc := r.md.Parser().Parse(text.NewReader(src))
	if err := r.md.Renderer().Render(&buf, src, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderHTML renders src for direct use in a template. Empty input gives an
// empty result.
func (r *MarkdownRenderer) RenderHTML(src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}
	b, err := r.Render([]byte(src))
	if err != nil {
		return "", err
	}
	return template.HTML(b), nil
}
