package search

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"path"
	"regexp"
	"strings"
)

// resultsTemplate renders the search results panel. Title and Description of
// each card are pre-escaped template.HTML carrying <mark> highlights.
var resultsTemplate = template.Must(template.New("results").Parse(
	`{{if not .Groups}}<div class="search-results-empty">` +
		`<p>No results found for "<strong>{{.Query}}</strong>"</p>` +
		`<p class="search-suggestions">Try different keywords or check the <a href="{{.ReferenceHref}}">Quick Reference</a> for common terms.</p>` +
		`</div>` +
		`{{else}}<div class="search-results-header">` +
		`<p>Found <strong>{{.Count}}</strong> {{.Noun}} for "<strong>{{.Query}}</strong>"</p>` +
		`</div>` +
		`{{range .Groups}}<div class="search-results-group">` +
		`<h3 class="search-results-type">{{.Type}}</h3>` +
		`{{range .Cards}}<div class="search-result-card">` +
		`<h4><a href="{{.Href}}">{{.Title}}</a></h4>` +
		`<p class="search-result-description">{{.Description}}</p>` +
		`<span class="search-result-url">{{.URL}}</span>` +
		`</div>{{end}}` +
		`</div>{{end}}{{end}}`))

type resultsView struct {
	Query         string
	Count         int
	Noun          string
	ReferenceHref string
	Groups        []groupView
}

type groupView struct {
	Type  DocumentType
	Cards []cardView
}

type cardView struct {
	Href        string
	URL         string
	Title       template.HTML
	Description template.HTML
}

// RenderResults renders the results panel for query. Empty results render
// the "no results" message; otherwise results are grouped by type.
func RenderResults(results []Document, query string) (template.HTML, error) {
	view := resultsView{
		Query:         query,
		Count:         len(results),
		Noun:          "results",
		ReferenceHref: siteHref(ReferenceURL),
	}
	if len(results) == 1 {
		view.Noun = "result"
	}

	for _, g := range GroupByType(results) {
		gv := groupView{Type: g.Type}
		for _, doc := range g.Documents {
			gv.Cards = append(gv.Cards, cardView{
				Href:        siteHref(doc.URL),
				URL:         doc.URL,
				Title:       Highlight(doc.Title, query),
				Description: Highlight(doc.Description, query),
			})
		}
		view.Groups = append(view.Groups, gv)
	}

	var buf bytes.Buffer
	if err := resultsTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("rendering results: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Highlight escapes text and wraps every case-insensitive occurrence of
// query in <mark>. The query is matched literally.
func Highlight(text, query string) template.HTML {
	if query == "" {
		return template.HTML(html.EscapeString(text))
	}

	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return template.HTML(html.EscapeString(text))
	}

	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] == loc[1] {
			continue
		}
		b.WriteString(html.EscapeString(text[last:loc[0]]))
		b.WriteString("<mark>")
		b.WriteString(html.EscapeString(text[loc[0]:loc[1]]))
		b.WriteString("</mark>")
		last = loc[1]
	}
	b.WriteString(html.EscapeString(text[last:]))
	return template.HTML(b.String())
}

// siteHref turns an index url into a root-relative link.
func siteHref(u string) string {
	if strings.Contains(u, "://") {
		return u
	}
	return path.Join("/", u)
}
