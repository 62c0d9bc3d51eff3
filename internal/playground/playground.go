// Package playground implements the live HTML/CSS editor: per-instance
// source state, the composed preview document, and the reset and
// reveal-solution transitions.
package playground

import (
	"errors"
	"log"
	"time"
)

const (
	// SolutionLabel is the resting text of the reveal button.
	SolutionLabel = "Show Solution"
	// SolutionShownLabel acknowledges a reveal until AckDuration passes.
	SolutionShownLabel = "Solution Shown"
	// DefaultAckDuration is how long an acknowledgment stays visible.
	DefaultAckDuration = 2 * time.Second
)

// ErrSurfaceDetached is returned by a Surface whose preview is not attached.
var ErrSurfaceDetached = errors.New("preview surface not attached")

// Attributes are the declarative fields of a playground host, entity-encoded.
type Attributes struct {
	HTML         string `json:"html" yaml:"html"`
	CSS          string `json:"css" yaml:"css"`
	SolutionHTML string `json:"solution_html,omitempty" yaml:"solution_html"`
	SolutionCSS  string `json:"solution_css,omitempty" yaml:"solution_css"`
}

// HasSolution reports whether the attributes carry a solution that differs
// from the starting text.
func (a Attributes) HasSolution() bool {
	return (a.SolutionHTML != "" && a.SolutionHTML != a.HTML) ||
		(a.SolutionCSS != "" && a.SolutionCSS != a.CSS)
}

// Host is one playground placement on a page.
type Host struct {
	ID         string     `json:"id"`
	Attributes Attributes `json:"attributes"`
}

// Surface is the presentation a playground instance renders into.
type Surface interface {
	// ShowEditors replaces the text displayed in the markup and style editors.
	ShowEditors(markup, style string)
	// WriteDocument replaces the whole content of the preview frame.
	WriteDocument(document string) error
	// SetSolutionLabel changes the text of the reveal button.
	SetSolutionLabel(label string)
}

// Scheduler runs fn after d. An event loop satisfies it.
type Scheduler interface {
	After(d time.Duration, fn func()) *time.Timer
}

type timerScheduler struct{}

func (timerScheduler) After(d time.Duration, fn func()) *time.Timer {
	return time.AfterFunc(d, fn)
}

// Options tunes an instance.
type Options struct {
	Scheduler   Scheduler
	AckDuration time.Duration
}

// Instance is one playground widget. Initial and solution text never change
// after New; only the current text moves.
type Instance struct {
	ID string

	initialMarkup  string
	initialStyle   string
	solutionMarkup string
	solutionStyle  string

	currentMarkup string
	currentStyle  string

	surface   Surface
	scheduler Scheduler
	ackFor    time.Duration
	ackTimer  *time.Timer
	// ackSeq identifies the latest reveal; older reverts that already
	// fired are ignored.
	ackSeq uint64
}

// New builds an instance from host attributes, shows the initial text and
// renders the first preview. Missing solution fields default to the initial
// text.
func New(id string, attrs Attributes, surface Surface, opts Options) *Instance {
	if opts.Scheduler == nil {
		opts.Scheduler = timerScheduler{}
	}
	if opts.AckDuration <= 0 {
		opts.AckDuration = DefaultAckDuration
	}

	in := &Instance{
		ID:            id,
		initialMarkup: Decode(attrs.HTML),
		initialStyle:  Decode(attrs.CSS),
		surface:       surface,
		scheduler:     opts.Scheduler,
		ackFor:        opts.AckDuration,
	}
	in.solutionMarkup = in.initialMarkup
	if attrs.SolutionHTML != "" {
		in.solutionMarkup = Decode(attrs.SolutionHTML)
	}
	in.solutionStyle = in.initialStyle
	if attrs.SolutionCSS != "" {
		in.solutionStyle = Decode(attrs.SolutionCSS)
	}

	in.currentMarkup = in.initialMarkup
	in.currentStyle = in.initialStyle
	in.surface.ShowEditors(in.currentMarkup, in.currentStyle)
	in.Render()
	return in
}

// HasSolution reports whether the solution differs from the starting text.
func (in *Instance) HasSolution() bool {
	return in.solutionMarkup != in.initialMarkup || in.solutionStyle != in.initialStyle
}

// Current returns the text the preview is rendered from.
func (in *Instance) Current() (markup, style string) {
	return in.currentMarkup, in.currentStyle
}

// Initial returns the starting text.
func (in *Instance) Initial() (markup, style string) {
	return in.initialMarkup, in.initialStyle
}

// Solution returns the solution text.
func (in *Instance) Solution() (markup, style string) {
	return in.solutionMarkup, in.solutionStyle
}

// Edit takes new editor content and re-renders. The editors already show it,
// so they are not written back.
func (in *Instance) Edit(markup, style string) {
	in.currentMarkup = markup
	in.currentStyle = style
	in.Render()
}

// Render replaces the preview with the composed document. A surface error is
// logged and the render dropped.
func (in *Instance) Render() {
	doc := ComposeDocument(in.currentMarkup, in.currentStyle)
	if err := in.surface.WriteDocument(doc); err != nil {
		log.Printf("playground %s: preview not updated: %v", in.ID, err)
	}
}

// Reset restores the starting text in the editors and the preview.
func (in *Instance) Reset() {
	in.currentMarkup = in.initialMarkup
	in.currentStyle = in.initialStyle
	in.surface.ShowEditors(in.currentMarkup, in.currentStyle)
	in.Render()
}

// RevealSolution shows the solution text and acknowledges it on the reveal
// button until the acknowledgment period ends.
func (in *Instance) RevealSolution() {
	in.currentMarkup = in.solutionMarkup
	in.currentStyle = in.solutionStyle
	in.surface.ShowEditors(in.currentMarkup, in.currentStyle)
	in.Render()

	if in.ackTimer != nil {
		in.ackTimer.Stop()
	}
	in.ackSeq++
	seq := in.ackSeq
	in.surface.SetSolutionLabel(SolutionShownLabel)
	in.ackTimer = in.scheduler.After(in.ackFor, func() {
		if seq != in.ackSeq {
			return
		}
		in.surface.SetSolutionLabel(SolutionLabel)
	})
}

// Close stops a pending acknowledgment revert.
func (in *Instance) Close() {
	in.ackSeq++
	if in.ackTimer != nil {
		in.ackTimer.Stop()
		in.ackTimer = nil
	}
}
