package search

import (
	"strings"
	"unicode/utf8"
)

// MinQueryLength is the shortest trimmed query that counts as an active search.
const MinQueryLength = 2

// Results holds the documents matching a normalized query.
type Results struct {
	Query     string
	Documents []Document
}

// Group is the set of results sharing one document type.
type Group struct {
	Type      DocumentType
	Documents []Document
}

// Normalize trims and case-folds a raw query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Active reports whether the query is long enough to show a results panel.
func Active(query string) bool {
	return ActiveWith(query, MinQueryLength)
}

// ActiveWith is Active with a custom minimum length. Length is counted in
// characters (runes), so a single emoji is one character and stays below a
// minimum of two, unlike a count of UTF-16 code units.
func ActiveWith(query string, minLength int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(query)) >= minLength
}

// Search filters index by substring match against each document's title,
// keywords and description. An empty query yields ok == false, meaning no
// search was performed. Matches keep index order.
func Search(query string, index []Document) (Results, bool) {
	q := Normalize(query)
	if q == "" {
		return Results{}, false
	}

	res := Results{Query: q}
	for _, doc := range index {
		if strings.Contains(doc.searchText(), q) {
			res.Documents = append(res.Documents, doc)
		}
	}
	return res, true
}

// GroupByType partitions docs by type, in order of first appearance.
func GroupByType(docs []Document) []Group {
	var groups []Group
	pos := make(map[DocumentType]int)
	for _, doc := range docs {
		i, ok := pos[doc.Type]
		if !ok {
			i = len(groups)
			pos[doc.Type] = i
			groups = append(groups, Group{Type: doc.Type})
		}
		groups[i].Documents = append(groups[i].Documents, doc)
	}
	return groups
}
