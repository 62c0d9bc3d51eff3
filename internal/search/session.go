package search

import (
	"html/template"
	"log"
	"time"

	"github.com/ziadkadry99/webstarter/internal/eventloop"
)

// DefaultDebounce is the quiet period after the last keystroke before a
// live query is evaluated.
const DefaultDebounce = 300 * time.Millisecond

// Panel is the presentation surface a live search session drives.
// ShowResults replaces any panel already shown.
type Panel interface {
	ShowResults(fragment template.HTML)
	HideResults()
	SetInput(value string)
}

// SessionOptions tunes a live search session.
type SessionOptions struct {
	Debounce       time.Duration
	MinQueryLength int
	Cache          *Cache
}

// Session is the per-connection live search state. All methods must be
// called on the loop the session was created with.
type Session struct {
	index     []Document
	panel     Panel
	input     string
	debouncer *eventloop.Debouncer
	minLength int
	cache     *Cache
}

// NewSession creates a live search session over a read-only index.
func NewSession(loop *eventloop.Loop, index []Document, panel Panel, opts SessionOptions) *Session {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.MinQueryLength <= 0 {
		opts.MinQueryLength = MinQueryLength
	}
	return &Session{
		index:     index,
		panel:     panel,
		debouncer: loop.Debounce(opts.Debounce),
		minLength: opts.MinQueryLength,
		cache:     opts.Cache,
	}
}

// Input records a keystroke and reschedules evaluation.
func (s *Session) Input(value string) {
	s.input = value
	s.debouncer.Trigger(s.Evaluate)
}

// Submit evaluates value immediately (Enter key or search button).
func (s *Session) Submit(value string) {
	s.input = value
	s.Evaluate()
}

// Evaluate runs the current input. Inactive queries hide the panel.
func (s *Session) Evaluate() {
	if !ActiveWith(s.input, s.minLength) {
		s.panel.HideResults()
		return
	}

	fragment, err := s.render(s.input)
	if err != nil {
		log.Printf("search: %v", err)
		s.panel.HideResults()
		return
	}
	s.panel.ShowResults(fragment)
}

func (s *Session) render(input string) (template.HTML, error) {
	if s.cache != nil {
		return s.cache.Render(input, s.index)
	}
	res, _ := Search(input, s.index)
	return RenderResults(res.Documents, res.Query)
}

// Close clears the input and removes the panel. The index is untouched.
func (s *Session) Close() {
	s.input = ""
	s.panel.SetInput("")
	s.panel.HideResults()
}

// Value returns the current raw input.
func (s *Session) Value() string {
	return s.input
}
