package content

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Typographer),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// renderMarkdown converts the about prose. The default goldmark renderer
// drops raw HTML, so the result is safe to embed as template.HTML.
func renderMarkdown(src string) (template.HTML, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
