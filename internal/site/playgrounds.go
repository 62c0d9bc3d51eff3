package site

import (
	"bufio"
	"bytes"
	"fmt"
	"html"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ziadkadry99/webstarter/internal/playground"
)

const playgroundFence = "```playground"

// extractPlaygrounds replaces every ```playground fence in src with the HTML
// of a playground host. Hosts are numbered from 0 in page order. The host
// HTML is emitted on a single line so markdown keeps it as one raw block.
func extractPlaygrounds(src []byte) ([]byte, []playground.Host, error) {
	var out bytes.Buffer
	var hosts []playground.Host

	scanner := bufio.NewScanner(bytes.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var body []string
	inFence := false
	startLine := 0
	line := 0

	for scanner.Scan() {
		line++
		text := scanner.Text()
		trimmed := strings.TrimSpace(text)

		if !inFence {
			if trimmed == playgroundFence {
				inFence = true
				startLine = line
				body = body[:0]
				continue
			}
			out.WriteString(text)
			out.WriteByte('\n')
			continue
		}

		if trimmed != "```" {
			body = append(body, text)
			continue
		}

		inFence = false
		attrs, err := parsePlayground(strings.Join(body, "\n"))
		if err != nil {
			return nil, nil, fmt.Errorf("playground at line %d: %w", startLine, err)
		}
		host := playground.Host{
			ID:         fmt.Sprintf("playground-%d", len(hosts)),
			Attributes: attrs,
		}
		hosts = append(hosts, host)

		out.WriteByte('\n')
		out.WriteString(renderHost(host))
		out.WriteString("\n\n")
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if inFence {
		return nil, nil, fmt.Errorf("playground at line %d: missing closing fence", startLine)
	}

	return out.Bytes(), hosts, nil
}

// parsePlayground decodes the YAML body of a playground fence into
// entity-encoded host attributes.
func parsePlayground(body string) (playground.Attributes, error) {
	var raw playground.Attributes
	if err := yaml.Unmarshal([]byte(body), &raw); err != nil {
		return playground.Attributes{}, fmt.Errorf("parsing yaml: %w", err)
	}
	if raw.HTML == "" && raw.CSS == "" {
		return playground.Attributes{}, fmt.Errorf("html or css is required")
	}
	return playground.Attributes{
		HTML:         playground.Encode(trimSource(raw.HTML)),
		CSS:          playground.Encode(trimSource(raw.CSS)),
		SolutionHTML: playground.Encode(trimSource(raw.SolutionHTML)),
		SolutionCSS:  playground.Encode(trimSource(raw.SolutionCSS)),
	}, nil
}

// trimSource drops the trailing newline YAML block scalars keep.
func trimSource(s string) string {
	return strings.TrimRight(s, "\n")
}

// attr escapes s for a double-quoted attribute or textarea on one line.
func attr(s string) string {
	s = html.EscapeString(s)
	s = strings.ReplaceAll(s, "\r", "&#13;")
	return strings.ReplaceAll(s, "\n", "&#10;")
}

// renderHost writes the playground host markup: controls, editors and a
// sandboxed preview frame holding the initial document.
func renderHost(h playground.Host) string {
	a := h.Attributes
	markup := playground.Decode(a.HTML)
	style := playground.Decode(a.CSS)

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="code-playground" id="%s" data-html="%s" data-css="%s"`, h.ID, attr(a.HTML), attr(a.CSS))
	if a.SolutionHTML != "" {
		fmt.Fprintf(&b, ` data-solution-html="%s"`, attr(a.SolutionHTML))
	}
	if a.SolutionCSS != "" {
		fmt.Fprintf(&b, ` data-solution-css="%s"`, attr(a.SolutionCSS))
	}
	b.WriteString(`>`)

	b.WriteString(`<div class="playground-controls">`)
	if a.HasSolution() {
		fmt.Fprintf(&b, `<button type="button" class="playground-btn playground-btn-solution" data-action="solution" aria-label="Show the solution code">%s</button>`, playground.SolutionLabel)
	}
	b.WriteString(`<button type="button" class="playground-btn playground-btn-reset" data-action="reset" aria-label="Reset code to initial state">Reset</button>`)
	b.WriteString(`</div>`)

	b.WriteString(`<div class="playground-editor">`)
	writeEditor(&b, h.ID, "html", "HTML", markup)
	writeEditor(&b, h.ID, "css", "CSS", style)
	b.WriteString(`</div>`)

	fmt.Fprintf(&b, `<div class="playground-preview"><label class="preview-label" for="%s-preview">Live Preview</label><div class="preview-container">`, h.ID)
	fmt.Fprintf(&b, `<iframe id="%s-preview" class="preview-iframe" sandbox="%s" title="Code preview" srcdoc="%s"></iframe>`,
		h.ID, playground.SandboxAttr, attr(playground.ComposeDocument(markup, style)))
	b.WriteString(`</div></div></div>`)

	return b.String()
}

func writeEditor(b *strings.Builder, id, field, label, text string) {
	fmt.Fprintf(b, `<div class="editor-panel"><label class="editor-label" for="%s-%s">%s</label>`, id, field, label)
	fmt.Fprintf(b, `<textarea id="%s-%s" class="code-editor" data-field="%s" spellcheck="false" placeholder="Enter your %s code here...">%s</textarea></div>`,
		id, field, field, label, attr(text))
}
