// Package site renders the teaching site from markdown: pages with
// navigation, copy buttons and playground hosts, a registry of the
// playgrounds each page carries, and the static build.
package site

import (
	"fmt"
	"html/template"
	"io/fs"
	"sort"

	"github.com/yuin/goldmark"

	"github.com/ziadkadry99/webstarter/internal/playground"
	"github.com/ziadkadry99/webstarter/internal/theme"
	"github.com/ziadkadry99/webstarter/internal/walker"
)

// DefaultTitle is used when no site title is configured.
const DefaultTitle = "Web Development Starter"

// Options controls which content is loaded and how pages are titled.
type Options struct {
	Title        string
	Include      []string
	Exclude      []string
	DefaultTheme string
}

// Page is one rendered content page.
type Page struct {
	Path        string // output path relative to the site root, e.g. "lessons/03-css-basics.html"
	Source      string // markdown path relative to the content root
	Title       string
	Content     template.HTML
	TOC         []tocEntry
	Playgrounds []playground.Host
}

// Site is an immutable set of rendered pages.
type Site struct {
	opts   Options
	pages  []*Page
	byPath map[string]*Page
	tmpl   *template.Template
}

// Load reads every markdown page of fsys and renders it.
func Load(fsys fs.FS, opts Options) (*Site, error) {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.DefaultTheme == "" {
		opts.DefaultTheme = theme.DefaultKey
	}

	files, err := walker.Walk(fsys, walker.Config{Include: opts.Include, Exclude: opts.Exclude})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no markdown files found")
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	s := &Site{
		opts:   opts,
		byPath: make(map[string]*Page, len(files)),
		tmpl:   tmpl,
	}
	md := newMarkdown()

	for _, f := range files {
		page, err := loadPage(md, f)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", f.RelPath, err)
		}
		if _, dup := s.byPath[page.Path]; dup {
			return nil, fmt.Errorf("rendering %s: duplicate page %s", f.RelPath, page.Path)
		}
		s.pages = append(s.pages, page)
		s.byPath[page.Path] = page
	}

	sort.SliceStable(s.pages, func(i, j int) bool {
		return s.pages[i].Path < s.pages[j].Path
	})
	return s, nil
}

func loadPage(md goldmark.Markdown, f walker.File) (*Page, error) {
	src, hosts, err := extractPlaygrounds(f.Content)
	if err != nil {
		return nil, err
	}

	body, toc, err := convert(md, src)
	if err != nil {
		return nil, err
	}
	body = wrapCodeExamples(body)
	body = rewriteMDLinks(body)

	return &Page{
		Path:        mdPathToHTML(f.RelPath),
		Source:      f.RelPath,
		Title:       extractTitle(string(f.Content), f.RelPath),
		Content:     template.HTML(body),
		TOC:         toc,
		Playgrounds: hosts,
	}, nil
}

// Title returns the site title.
func (s *Site) Title() string {
	return s.opts.Title
}

// Pages returns the pages ordered by path.
func (s *Site) Pages() []*Page {
	return s.pages
}

// Page returns the page at path, relative to the site root.
func (s *Site) Page(path string) (*Page, bool) {
	p, ok := s.byPath[path]
	return p, ok
}

// Playgrounds returns the playground hosts of the page at path.
func (s *Site) Playgrounds(path string) ([]playground.Host, bool) {
	p, ok := s.byPath[path]
	if !ok {
		return nil, false
	}
	return p.Playgrounds, true
}

// PlaygroundDocument returns the initial preview document of one playground.
func (s *Site) PlaygroundDocument(path, id string) (string, bool) {
	hosts, ok := s.Playgrounds(path)
	if !ok {
		return "", false
	}
	for _, h := range hosts {
		if h.ID == id {
			return playground.ComposeDocument(playground.Decode(h.Attributes.HTML), playground.Decode(h.Attributes.CSS)), true
		}
	}
	return "", false
}
