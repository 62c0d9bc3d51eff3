// Package progress reports static site builds page by page.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
)

// Page describes one written page.
type Page struct {
	Path        string
	Playgrounds int
	Bytes       int64
}

func (p Page) String() string {
	s := p.Path
	switch p.Playgrounds {
	case 0:
	case 1:
		s += " (1 playground)"
	default:
		s += fmt.Sprintf(" (%d playgrounds)", p.Playgrounds)
	}
	return s
}

// Summary totals a finished build.
type Summary struct {
	OutputDir   string
	Pages       int
	Playgrounds int
	Assets      int
	Bytes       int64
}

func (s Summary) String() string {
	return fmt.Sprintf("Built %d pages with %d playgrounds and %d assets (%s) in %s",
		s.Pages, s.Playgrounds, s.Assets, humanize.Bytes(uint64(s.Bytes)), s.OutputDir)
}

// Reporter receives build progress.
type Reporter interface {
	Start(pages int)
	PageWritten(done int, page Page)
	Finish(summary Summary)
}

// NewReporter returns a CIReporter when running under CI and a
// TerminalReporter otherwise.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{}
	}
	return &TerminalReporter{}
}

// TerminalReporter shows a page counter bar naming the page just written.
type TerminalReporter struct {
	Out io.Writer // defaults to stderr
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) out() io.Writer {
	if r.Out == nil {
		return os.Stderr
	}
	return r.Out
}

func (r *TerminalReporter) Start(pages int) {
	r.bar = progressbar.NewOptions(pages,
		progressbar.OptionSetWriter(r.out()),
		progressbar.OptionSetDescription("Building pages"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) PageWritten(done int, page Page) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(page.String())
	_ = r.bar.Set(done)
}

func (r *TerminalReporter) Finish(summary Summary) {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
	fmt.Fprintln(r.out(), summary)
}

// CIReporter prints one line per page, for CI logs.
type CIReporter struct {
	Out   io.Writer // defaults to stderr
	pages int
}

func (r *CIReporter) out() io.Writer {
	if r.Out == nil {
		return os.Stderr
	}
	return r.Out
}

func (r *CIReporter) Start(pages int) {
	r.pages = pages
	fmt.Fprintf(r.out(), "Building %d pages\n", pages)
}

func (r *CIReporter) PageWritten(done int, page Page) {
	fmt.Fprintf(r.out(), "[%d/%d] %s %s\n", done, r.pages, page, humanize.Bytes(uint64(page.Bytes)))
}

func (r *CIReporter) Finish(summary Summary) {
	fmt.Fprintln(r.out(), summary)
}

// Nop discards progress.
type Nop struct{}

func (Nop) Start(int)             {}
func (Nop) PageWritten(int, Page) {}
func (Nop) Finish(Summary)        {}
