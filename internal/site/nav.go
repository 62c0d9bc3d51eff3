package site

import (
	"path"
	"strings"
)

// navItem is a link in the site navigation. Items with children are
// sections named after a content directory.
type navItem struct {
	Title    string
	Href     string
	Active   bool
	Children []navItem
}

// buildNav lays out the navigation for the page at activePath: Home first,
// then one section per content directory, then the other top-level pages.
// basePath is the relative prefix back to the site root.
func buildNav(pages []*Page, activePath, basePath string) []navItem {
	var home []navItem
	var sections []navItem
	var rest []navItem
	sectionIdx := make(map[string]int)

	for _, p := range pages {
		link := navItem{
			Title:  p.Title,
			Href:   basePath + p.Path,
			Active: p.Path == activePath,
		}

		dir, _, nested := strings.Cut(p.Path, "/")
		switch {
		case p.Path == "index.html":
			link.Title = "Home"
			home = append(home, link)
		case nested:
			i, ok := sectionIdx[dir]
			if !ok {
				i = len(sections)
				sectionIdx[dir] = i
				sections = append(sections, navItem{Title: formatName(dir)})
			}
			sections[i].Children = append(sections[i].Children, link)
			if link.Active {
				sections[i].Active = true
			}
		default:
			rest = append(rest, link)
		}
	}

	items := append(home, sections...)
	return append(items, rest...)
}

// basePathFor returns the relative prefix from htmlPath back to the root.
func basePathFor(htmlPath string) string {
	return strings.Repeat("../", strings.Count(htmlPath, "/"))
}

// mdPathToHTML converts a markdown path to its HTML equivalent.
func mdPathToHTML(p string) string {
	ext := path.Ext(p)
	if strings.EqualFold(ext, ".md") {
		return strings.TrimSuffix(p, ext) + ".html"
	}
	return p
}
