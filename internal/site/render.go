package site

import (
	"html/template"
	"io"

	"github.com/ziadkadry99/webstarter/internal/theme"
)

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title     string
	BaseTitle string
	SiteTitle string
	PagePath  string
	BasePath  string
	Content   template.HTML
	TOC       []tocEntry
	Nav       []navItem
	Themes    []theme.Theme
	Theme     theme.Theme
	ThemeHref string
	Live      bool
}

// RenderPage writes page dressed in theme t. live enables the WebSocket
// channel that drives search and playgrounds.
func (s *Site) RenderPage(w io.Writer, page *Page, t theme.Theme, live bool) error {
	basePath := basePathFor(page.Path)
	title := page.Title + " - " + s.opts.Title
	if t.Key != theme.DefaultKey {
		title = theme.DecorateTitle(title, t)
	}

	return s.tmpl.Execute(w, pageData{
		Title:     title,
		BaseTitle: page.Title,
		SiteTitle: s.opts.Title,
		PagePath:  page.Path,
		BasePath:  basePath,
		Content:   page.Content,
		TOC:       page.TOC,
		Nav:       buildNav(s.pages, page.Path, basePath),
		Themes:    theme.All(),
		Theme:     t,
		ThemeHref: theme.StylesheetHref(t, basePath),
		Live:      live,
	})
}
