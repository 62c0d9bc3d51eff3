package search

import (
	"errors"
	"testing"
)

func cssBasics() Document {
	return Document{
		Title:       "CSS Basics",
		Type:        TypeLesson,
		URL:         "lessons/03-css-basics.html",
		Keywords:    []string{"css", "style"},
		Description: "Add style and visual appeal to your HTML pages",
	}
}

func TestBuildIndexIsValid(t *testing.T) {
	index := BuildIndex()
	if len(index) != 23 {
		t.Fatalf("index has %d documents, want 23", len(index))
	}
	for _, doc := range index {
		if err := doc.Validate(); err != nil {
			t.Errorf("invalid document: %v", err)
		}
	}
}

func TestBuildIndexReturnsFreshSlice(t *testing.T) {
	a := BuildIndex()
	a[0].Title = "changed"
	b := BuildIndex()
	if b[0].Title == "changed" {
		t.Error("BuildIndex shares state between calls")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
	}{
		{"no title", Document{Type: TypeLesson, URL: "a.html", Keywords: []string{"a"}}},
		{"no url", Document{Title: "A", Type: TypeLesson, Keywords: []string{"a"}}},
		{"no keywords", Document{Title: "A", Type: TypeLesson, URL: "a.html"}},
		{"bad type", Document{Title: "A", Type: "Video", URL: "a.html", Keywords: []string{"a"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate()
			if !errors.Is(err, ErrInvalidDocument) {
				t.Errorf("Validate() = %v, want ErrInvalidDocument", err)
			}
		})
	}
}

func TestSearchEmptyQueryIsNoSearch(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		if _, ok := Search(q, BuildIndex()); ok {
			t.Errorf("Search(%q) ok = true, want false", q)
		}
	}
}

func TestSearchMatchesSubstring(t *testing.T) {
	index := []Document{cssBasics()}

	res, ok := Search("  CSS ", index)
	if !ok {
		t.Fatal("Search returned no-search for a real query")
	}
	if res.Query != "css" {
		t.Errorf("query = %q, want normalized %q", res.Query, "css")
	}
	if len(res.Documents) != 1 || res.Documents[0].Title != "CSS Basics" {
		t.Fatalf("results = %+v, want CSS Basics", res.Documents)
	}

	res, ok = Search("zz", index)
	if !ok {
		t.Fatal("Search(zz) ok = false")
	}
	if len(res.Documents) != 0 {
		t.Errorf("Search(zz) = %d results, want 0", len(res.Documents))
	}
}

func TestSearchSpansFields(t *testing.T) {
	index := []Document{cssBasics()}
	// Matches across the title/keyword boundary of the joined search text.
	res, _ := Search("basics css", index)
	if len(res.Documents) != 1 {
		t.Errorf("expected match across title and keywords")
	}
	res, _ = Search("visual appeal", index)
	if len(res.Documents) != 1 {
		t.Errorf("expected match in description")
	}
}

func TestSearchPreservesIndexOrder(t *testing.T) {
	index := BuildIndex()
	res, _ := Search("github", index)
	if len(res.Documents) < 2 {
		t.Fatalf("expected several github results, got %d", len(res.Documents))
	}

	pos := make(map[string]int)
	for i, doc := range index {
		pos[doc.Title] = i
	}
	for i := 1; i < len(res.Documents); i++ {
		if pos[res.Documents[i-1].Title] > pos[res.Documents[i].Title] {
			t.Errorf("results out of index order at %d: %q before %q",
				i, res.Documents[i-1].Title, res.Documents[i].Title)
		}
	}
}

func TestActive(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"", false},
		{"c", false},
		{"  c  ", false},
		{"é", false},
		{"cs", true},
		{" css ", true},
	}
	for _, tt := range tests {
		if got := Active(tt.query); got != tt.want {
			t.Errorf("Active(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestGroupByType(t *testing.T) {
	index := BuildIndex()
	res, _ := Search("css", index)
	groups := GroupByType(res.Documents)

	// First-seen order among the results.
	var wantOrder []DocumentType
	seen := make(map[DocumentType]bool)
	counts := make(map[DocumentType]int)
	for _, doc := range res.Documents {
		if !seen[doc.Type] {
			seen[doc.Type] = true
			wantOrder = append(wantOrder, doc.Type)
		}
		counts[doc.Type]++
	}

	if len(groups) != len(wantOrder) {
		t.Fatalf("got %d groups, want %d", len(groups), len(wantOrder))
	}
	total := 0
	for i, g := range groups {
		if g.Type != wantOrder[i] {
			t.Errorf("group %d type = %s, want %s", i, g.Type, wantOrder[i])
		}
		if len(g.Documents) != counts[g.Type] {
			t.Errorf("group %s has %d docs, want %d", g.Type, len(g.Documents), counts[g.Type])
		}
		for _, doc := range g.Documents {
			if doc.Type != g.Type {
				t.Errorf("group %s contains %s document %q", g.Type, doc.Type, doc.Title)
			}
		}
		total += len(g.Documents)
	}
	if total != len(res.Documents) {
		t.Errorf("groups hold %d docs, want %d", total, len(res.Documents))
	}
}

func TestGroupByTypeEmpty(t *testing.T) {
	if groups := GroupByType(nil); len(groups) != 0 {
		t.Errorf("GroupByType(nil) = %v, want empty", groups)
	}
}

func TestActiveCountsCharacters(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"ab", true},
		{" a ", false},
		{"é", false},
		{"\U0001F600", false},
		{"\U0001F600\U0001F600", true},
		{"日本", true},
	}
	for _, tt := range tests {
		if got := ActiveWith(tt.query, 2); got != tt.want {
			t.Errorf("ActiveWith(%q, 2) = %v, want %v", tt.query, got, tt.want)
		}
	}
}
