package playground

import (
	"time"

	"github.com/ziadkadry99/webstarter/internal/eventloop"
)

const (
	// DefaultEditDebounce is the quiet period after the last keystroke
	// before an edit reaches the preview.
	DefaultEditDebounce = 300 * time.Millisecond
	// DefaultPasteDelay lets pasted text land before the debounce starts.
	DefaultPasteDelay = 100 * time.Millisecond
)

// EditorOptions tunes the edit pipeline.
type EditorOptions struct {
	Debounce   time.Duration
	PasteDelay time.Duration
}

// Editor feeds keystrokes into an instance through a debouncer. It must be
// used from the loop it was created with.
type Editor struct {
	Instance *Instance

	debouncer  *eventloop.Debouncer
	pasteDelay time.Duration

	pendingMarkup string
	pendingStyle  string
	dirty         bool
}

// NewEditor wraps inst with a debounced edit pipeline on loop.
func NewEditor(loop *eventloop.Loop, inst *Instance, opts EditorOptions) *Editor {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultEditDebounce
	}
	if opts.PasteDelay < 0 {
		opts.PasteDelay = 0
	} else if opts.PasteDelay == 0 {
		opts.PasteDelay = DefaultPasteDelay
	}
	return &Editor{
		Instance:   inst,
		debouncer:  loop.Debounce(opts.Debounce),
		pasteDelay: opts.PasteDelay,
	}
}

// Input records the editors' content and reschedules the preview update.
func (e *Editor) Input(markup, style string) {
	e.hold(markup, style)
	e.debouncer.Trigger(e.flush)
}

// Paste is Input after a short grace delay.
func (e *Editor) Paste(markup, style string) {
	e.hold(markup, style)
	e.debouncer.TriggerAfter(e.pasteDelay, e.flush)
}

// Reset drops any pending edit and restores the starting text.
func (e *Editor) Reset() {
	e.dirty = false
	e.Instance.Reset()
}

// RevealSolution drops any pending edit and shows the solution.
func (e *Editor) RevealSolution() {
	e.dirty = false
	e.Instance.RevealSolution()
}

// Close drops pending work.
func (e *Editor) Close() {
	e.dirty = false
	e.Instance.Close()
}

func (e *Editor) hold(markup, style string) {
	e.pendingMarkup = markup
	e.pendingStyle = style
	e.dirty = true
}

// flush applies the latest held content; stale timers find nothing to do.
func (e *Editor) flush() {
	if !e.dirty {
		return
	}
	e.dirty = false
	e.Instance.Edit(e.pendingMarkup, e.pendingStyle)
}
