package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}
	r.Start(2)
	r.PageWritten(1, Page{Path: "index.html", Bytes: 512})
	r.PageWritten(2, Page{Path: "lessons/03-css.html", Playgrounds: 2, Bytes: 0})
	r.Finish(Summary{OutputDir: "_site", Pages: 2, Playgrounds: 2, Assets: 5, Bytes: 1500})

	want := "Building 2 pages\n" +
		"[1/2] index.html 512 B\n" +
		"[2/2] lessons/03-css.html (2 playgrounds) 0 B\n" +
		"Built 2 pages with 2 playgrounds and 5 assets (1.5 kB) in _site\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPageString(t *testing.T) {
	tests := []struct {
		page Page
		want string
	}{
		{Page{Path: "index.html"}, "index.html"},
		{Page{Path: "a.html", Playgrounds: 1}, "a.html (1 playground)"},
		{Page{Path: "b.html", Playgrounds: 3}, "b.html (3 playgrounds)"},
	}
	for _, tt := range tests {
		if got := tt.page.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTerminalReporterPrintsSummary(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReporter{Out: &buf}
	r.Start(1)
	r.PageWritten(1, Page{Path: "index.html", Bytes: 10})
	r.Finish(Summary{OutputDir: "out", Pages: 1, Assets: 2, Bytes: 10})

	if !strings.Contains(buf.String(), "Built 1 pages with 0 playgrounds and 2 assets (10 B) in out") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}
