package playground

import (
	"html"
	"strings"
)

// documentTemplate wraps the user's style and markup into a standalone page.
const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Preview</title>
    <style>
        {{STYLE}}
    </style>
</head>
<body>
    {{MARKUP}}
</body>
</html>`

// ComposeDocument builds the complete preview document for markup and style.
// The text is embedded verbatim: the preview frame is sandboxed, not the text.
func ComposeDocument(markup, style string) string {
	// Replacement is single-pass, so placeholders typed by the user stay literal.
	r := strings.NewReplacer("{{STYLE}}", style, "{{MARKUP}}", markup)
	return r.Replace(documentTemplate)
}

// Decode turns an entity-encoded host attribute back into source text.
func Decode(attr string) string {
	if !strings.Contains(attr, "&") {
		return attr
	}
	return html.UnescapeString(attr)
}

// Encode escapes source text for a host attribute.
func Encode(src string) string {
	return html.EscapeString(src)
}
