package site

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// tocEntry is one second-level heading of a page.
type tocEntry struct {
	ID    string
	Title string
}

// newMarkdown returns the markdown engine shared by every page.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// convert renders markdown source to HTML and collects the table of contents.
func convert(md goldmark.Markdown, src []byte) (string, []tocEntry, error) {
	doc := md.Parser().Parse(text.NewReader(src))

	var toc []tocEntry
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != 2 {
			return ast.WalkContinue, nil
		}
		id, ok := h.AttributeString("id")
		if !ok {
			return ast.WalkSkipChildren, nil
		}
		idBytes, _ := id.([]byte)
		toc = append(toc, tocEntry{ID: string(idBytes), Title: headingText(h, src)})
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, src, doc); err != nil {
		return "", nil, fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), toc, nil
}

// headingText concatenates the text segments below a heading.
func headingText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
			continue
		}
		b.WriteString(headingText(c, src))
	}
	return b.String()
}

// extractTitle pulls the first # heading from markdown content, or falls back to the filename.
func extractTitle(content, relPath string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return formatName(strings.TrimSuffix(path.Base(relPath), path.Ext(relPath)))
}

const copyButton = `<button type="button" class="copy-code-btn" aria-label="Copy code to clipboard" title="Copy code to clipboard">Copy</button>`

// wrapCodeExamples puts every <pre> block in a .code-example container with a
// copy button.
func wrapCodeExamples(htmlContent string) string {
	const openTag = `<pre`
	const closeTag = `</pre>`

	var b strings.Builder
	remaining := htmlContent
	for {
		idx := strings.Index(remaining, openTag)
		if idx == -1 {
			b.WriteString(remaining)
			break
		}
		// Skip tags that merely start with "pre", such as <preview>.
		next := idx + len(openTag)
		if next < len(remaining) && remaining[next] != '>' && remaining[next] != ' ' {
			b.WriteString(remaining[:next])
			remaining = remaining[next:]
			continue
		}
		endIdx := strings.Index(remaining[idx:], closeTag)
		if endIdx == -1 {
			b.WriteString(remaining)
			break
		}
		endIdx += idx + len(closeTag)

		b.WriteString(remaining[:idx])
		b.WriteString(`<div class="code-example">`)
		b.WriteString(remaining[idx:endIdx])
		b.WriteString(copyButton)
		b.WriteString(`</div>`)
		remaining = remaining[endIdx:]
	}
	return b.String()
}

// rewriteMDLinks changes .md links in HTML content to .html links.
func rewriteMDLinks(content string) string {
	result := strings.ReplaceAll(content, `.md"`, `.html"`)
	return strings.ReplaceAll(result, `.md#`, `.html#`)
}

// formatName turns a slug such as "01-html-basics" into "Html Basics".
func formatName(name string) string {
	words := strings.FieldsFunc(name, func(c rune) bool {
		return c == '-' || c == '_'
	})
	out := words[:0]
	for _, w := range words {
		if strings.Trim(w, "0123456789") == "" {
			continue
		}
		out = append(out, strings.ToUpper(w[:1])+w[1:])
	}
	return strings.Join(out, " ")
}
