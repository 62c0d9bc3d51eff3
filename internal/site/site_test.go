package site

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/ziadkadry99/webstarter/internal/progress"
	"github.com/ziadkadry99/webstarter/internal/search"
	"github.com/ziadkadry99/webstarter/internal/theme"
)

const lessonSource = "# CSS Basics\n\nIntro text.\n\n## First Part\n\n```playground\nhtml: |\n  <p>Hi</p>\ncss: |\n  p{color:red}\n```\n\n## Second Part\n\n```html\n<p>example</p>\n```\n\nSee [the reference](../reference.md).\n"

func testContent() fstest.MapFS {
	return fstest.MapFS{
		"index.md":             {Data: []byte("# Home\n\nWelcome.\n")},
		"reference.md":         {Data: []byte("# Quick Reference\n\n## HTML Tags\n\nTags.\n")},
		"lessons/03-css.md":    {Data: []byte(lessonSource)},
		"lessons/04-layout.md": {Data: []byte("# CSS Layout\n\n```playground\nhtml: <div>A</div>\ncss: \"\"\nsolution_css: \"div { display: flex; }\"\n```\n")},
	}
}

func loadTestSite(t *testing.T) *Site {
	t.Helper()
	s, err := Load(testContent(), Options{Title: "Test Site"})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return s
}

func TestLoadPages(t *testing.T) {
	s := loadTestSite(t)

	var paths []string
	for _, p := range s.Pages() {
		paths = append(paths, p.Path)
	}
	want := "index.html,lessons/03-css.html,lessons/04-layout.html,reference.html"
	if got := strings.Join(paths, ","); got != want {
		t.Errorf("pages = %s, want %s", got, want)
	}

	page, ok := s.Page("lessons/03-css.html")
	if !ok {
		t.Fatal("lesson page missing")
	}
	if page.Title != "CSS Basics" {
		t.Errorf("title = %q", page.Title)
	}
	if len(page.TOC) != 2 || page.TOC[0].ID != "first-part" || page.TOC[1].Title != "Second Part" {
		t.Errorf("toc = %+v", page.TOC)
	}
	if !strings.Contains(string(page.Content), `href="../reference.html"`) {
		t.Error("markdown links should point at .html pages")
	}
}

func TestLoadNoContent(t *testing.T) {
	if _, err := Load(fstest.MapFS{"notes.txt": {Data: []byte("x")}}, Options{}); err == nil {
		t.Error("expected error for content without markdown")
	}
}

func TestPlaygroundHost(t *testing.T) {
	s := loadTestSite(t)
	page, _ := s.Page("lessons/03-css.html")
	content := string(page.Content)

	for _, want := range []string{
		`class="code-playground" id="playground-0"`,
		`data-html="&amp;lt;p&amp;gt;Hi&amp;lt;/p&amp;gt;"`,
		`sandbox="allow-same-origin"`,
		`&lt;p&gt;Hi&lt;/p&gt;`,
		`data-action="reset"`,
	} {
		if !strings.Contains(content, want) {
			t.Errorf("host missing %q", want)
		}
	}
	if strings.Contains(content, `data-action="solution"`) {
		t.Error("solution button rendered without a solution")
	}

	hosts, ok := s.Playgrounds("lessons/03-css.html")
	if !ok || len(hosts) != 1 {
		t.Fatalf("Playgrounds() = %v, %v", hosts, ok)
	}
	if hosts[0].ID != "playground-0" || hosts[0].Attributes.HTML != "&lt;p&gt;Hi&lt;/p&gt;" || hosts[0].Attributes.CSS != "p{color:red}" {
		t.Errorf("host = %+v", hosts[0])
	}
}

func TestPlaygroundHostWithSolution(t *testing.T) {
	s := loadTestSite(t)
	page, _ := s.Page("lessons/04-layout.html")
	content := string(page.Content)

	if !strings.Contains(content, `data-action="solution"`) {
		t.Error("solution button missing")
	}
	if !strings.Contains(content, `</iframe></div></div></div>`) {
		t.Error("host with empty css was split by markdown")
	}
}

func TestPlaygroundErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unclosed", "# X\n\n```playground\nhtml: <p>a</p>\n"},
		{"bad yaml", "# X\n\n```playground\nhtml: [unclosed\n```\n"},
		{"empty", "# X\n\n```playground\nsolution_html: <p>a</p>\n```\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"index.md": {Data: []byte(tt.src)}}
			if _, err := Load(fsys, Options{}); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestPlaygroundDocument(t *testing.T) {
	s := loadTestSite(t)

	doc, ok := s.PlaygroundDocument("lessons/03-css.html", "playground-0")
	if !ok {
		t.Fatal("document missing")
	}
	if !strings.Contains(doc, "<p>Hi</p>") || !strings.Contains(doc, "p{color:red}") {
		t.Errorf("document = %s", doc)
	}
	if _, ok := s.PlaygroundDocument("lessons/03-css.html", "playground-7"); ok {
		t.Error("unknown id should not resolve")
	}
	if _, ok := s.PlaygroundDocument("nope.html", "playground-0"); ok {
		t.Error("unknown page should not resolve")
	}
}

func TestCodeExamplesWrapped(t *testing.T) {
	s := loadTestSite(t)
	page, _ := s.Page("lessons/03-css.html")
	content := string(page.Content)

	if strings.Count(content, `<div class="code-example">`) != 1 {
		t.Errorf("expected one code example:\n%s", content)
	}
	if !strings.Contains(content, `class="copy-code-btn"`) {
		t.Error("copy button missing")
	}
}

func TestWrapCodeExamples(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"<p>x</p>", "<p>x</p>"},
		{"<pre><code>a</code></pre>", `<div class="code-example"><pre><code>a</code></pre>` + copyButton + `</div>`},
		{`<pre style="x">a</pre><p>b</p>`, `<div class="code-example"><pre style="x">a</pre>` + copyButton + `</div><p>b</p>`},
		{"<preview>a</preview>", "<preview>a</preview>"},
		{"<pre>unclosed", "<pre>unclosed"},
	}
	for _, tt := range tests {
		if got := wrapCodeExamples(tt.in); got != tt.want {
			t.Errorf("wrapCodeExamples(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSearchIndexPagesExist(t *testing.T) {
	s, err := Load(DefaultContent(), Options{})
	if err != nil {
		t.Fatalf("Load(DefaultContent()) error: %v", err)
	}
	if len(s.Pages()) != 19 {
		t.Errorf("default content pages = %d, want 19", len(s.Pages()))
	}

	for _, doc := range search.BuildIndex() {
		path, _, _ := strings.Cut(doc.URL, "#")
		if _, ok := s.Page(path); !ok {
			t.Errorf("index entry %q points at missing page %s", doc.Title, path)
		}
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		content, path, want string
	}{
		{"# Hello\n\ntext", "a.md", "Hello"},
		{"no heading", "lessons/01-html-basics.md", "Html Basics"},
		{"## Sub only", "design-resources.md", "Design Resources"},
	}
	for _, tt := range tests {
		if got := extractTitle(tt.content, tt.path); got != tt.want {
			t.Errorf("extractTitle(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestMdPathToHTML(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"index.md", "index.html"},
		{"lessons/01-html-basics.md", "lessons/01-html-basics.html"},
		{"README.MD", "README.html"},
		{"style.css", "style.css"},
	}
	for _, tt := range tests {
		if got := mdPathToHTML(tt.input); got != tt.want {
			t.Errorf("mdPathToHTML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuildNav(t *testing.T) {
	s := loadTestSite(t)
	nav := buildNav(s.Pages(), "lessons/04-layout.html", "../")

	if len(nav) != 3 {
		t.Fatalf("nav items = %d, want 3: %+v", len(nav), nav)
	}
	if nav[0].Title != "Home" || nav[0].Href != "../index.html" {
		t.Errorf("first item = %+v", nav[0])
	}
	lessons := nav[1]
	if lessons.Title != "Lessons" || !lessons.Active || len(lessons.Children) != 2 {
		t.Errorf("lessons section = %+v", lessons)
	}
	if !lessons.Children[1].Active || lessons.Children[0].Active {
		t.Errorf("active link wrong: %+v", lessons.Children)
	}
	if nav[2].Title != "Quick Reference" {
		t.Errorf("last item = %+v", nav[2])
	}
}

func TestRenderPageTheme(t *testing.T) {
	s := loadTestSite(t)
	page, _ := s.Page("lessons/03-css.html")

	var buf bytes.Buffer
	if err := s.RenderPage(&buf, page, theme.Resolve("dark"), true); err != nil {
		t.Fatalf("RenderPage() error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<title>CSS Basics (Dark Mode Theme)</title>",
		`href="../css/themes/dark.css"`,
		`href="../style.css"`,
		`data-live="true"`,
		`data-page="lessons/03-css.html"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}

	buf.Reset()
	if err := s.RenderPage(&buf, page, theme.Resolve(""), false); err != nil {
		t.Fatalf("RenderPage() error: %v", err)
	}
	out = buf.String()
	if !strings.Contains(out, "<title>CSS Basics - Test Site</title>") {
		t.Error("default theme should keep the plain title")
	}
	if strings.Contains(out, "data-theme-stylesheet>") || strings.Contains(out, `data-live`) {
		t.Error("static default page should carry no theme link and no live flag")
	}
}

func TestBuild(t *testing.T) {
	s := loadTestSite(t)
	out := t.TempDir()

	n, err := s.Build(out, nil)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if n != 4 {
		t.Errorf("pages written = %d, want 4", n)
	}

	for _, rel := range []string{
		"index.html",
		"reference.html",
		"lessons/03-css.html",
		"style.css",
		"script.js",
		"css/themes/dark.css",
		"css/themes/classic.css",
		"css/themes/colorful.css",
	} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(out, "lessons", "03-css.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `srcdoc="`) {
		t.Error("static page should embed the initial preview")
	}
}

type recordingReporter struct {
	pages   []progress.Page
	summary progress.Summary
}

func (r *recordingReporter) Start(int) {}

func (r *recordingReporter) PageWritten(_ int, page progress.Page) {
	r.pages = append(r.pages, page)
}

func (r *recordingReporter) Finish(summary progress.Summary) {
	r.summary = summary
}

func TestBuildReportsPages(t *testing.T) {
	s := loadTestSite(t)
	out := t.TempDir()
	rep := &recordingReporter{}

	if _, err := s.Build(out, rep); err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(rep.pages) != 4 {
		t.Fatalf("pages reported = %d, want 4", len(rep.pages))
	}
	for _, p := range rep.pages {
		info, err := os.Stat(filepath.Join(out, filepath.FromSlash(p.Path)))
		if err != nil {
			t.Fatalf("stat %s: %v", p.Path, err)
		}
		if info.Size() != p.Bytes {
			t.Errorf("%s: reported %d bytes, file has %d", p.Path, p.Bytes, info.Size())
		}
	}
	if rep.pages[1].Path != "lessons/03-css.html" || rep.pages[1].Playgrounds != 1 {
		t.Errorf("lesson report = %+v", rep.pages[1])
	}

	sum := rep.summary
	if sum.Pages != 4 || sum.Playgrounds != 2 || sum.Assets != 5 || sum.OutputDir != out {
		t.Errorf("summary = %+v", sum)
	}
}
