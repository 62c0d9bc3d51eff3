package playground

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ziadkadry99/webstarter/internal/eventloop"
)

func newTestEditor(t *testing.T, opts EditorOptions) (*eventloop.Loop, *Editor, *fakeSurface) {
	t.Helper()
	loop := eventloop.New("playground-test", 16)
	ctx, cancel := context.WithCancel(context.Background())
	go loop.Run(ctx)
	t.Cleanup(cancel)

	surface := &fakeSurface{}
	var ed *Editor
	loop.Do(func() {
		in := New("playground-0", Attributes{HTML: "<p>Hi</p>", CSS: "p{color:red}", SolutionHTML: "<p>Done</p>"},
			surface, Options{Scheduler: loop, AckDuration: time.Hour})
		ed = NewEditor(loop, in, opts)
	})
	return loop, ed, surface
}

func waitForRenders(t *testing.T, s *fakeSurface, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for s.renders() < n && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if s.renders() < n {
		t.Fatalf("renders = %d, want at least %d", s.renders(), n)
	}
}

func TestEditorDebouncesKeystrokes(t *testing.T) {
	loop, ed, surface := newTestEditor(t, EditorOptions{Debounce: 30 * time.Millisecond})
	// One render from New.
	waitForRenders(t, surface, 1)

	loop.Do(func() {
		ed.Input("<p>B</p>", "p{color:red}")
		ed.Input("<p>By</p>", "p{color:red}")
		ed.Input("<p>Bye</p>", "p{color:red}")
	})

	waitForRenders(t, surface, 2)
	time.Sleep(80 * time.Millisecond)

	if n := surface.renders(); n != 2 {
		t.Errorf("renders = %d, want 2 (initial + one debounced)", n)
	}
	if !strings.Contains(surface.lastDocument(), "<p>Bye</p>") {
		t.Errorf("preview did not get the last keystroke:\n%s", surface.lastDocument())
	}
}

func TestEditorPasteWaitsForGrace(t *testing.T) {
	loop, ed, surface := newTestEditor(t, EditorOptions{Debounce: 10 * time.Millisecond, PasteDelay: 60 * time.Millisecond})
	waitForRenders(t, surface, 1)

	start := time.Now()
	loop.Do(func() { ed.Paste("<p>pasted</p>", "") })
	waitForRenders(t, surface, 2)

	if elapsed := time.Since(start); elapsed < 60*time.Millisecond {
		t.Errorf("paste rendered after %v, want at least the grace delay", elapsed)
	}
}

func TestEditorResetDropsPendingEdit(t *testing.T) {
	loop, ed, surface := newTestEditor(t, EditorOptions{Debounce: 40 * time.Millisecond})
	waitForRenders(t, surface, 1)

	loop.Do(func() {
		ed.Input("<p>Bye</p>", "")
		ed.Reset()
	})
	time.Sleep(120 * time.Millisecond)

	var markup string
	loop.Do(func() { markup, _ = ed.Instance.Current() })
	if markup != "<p>Hi</p>" {
		t.Errorf("pending edit overrode reset: current = %q", markup)
	}
	if !strings.Contains(surface.lastDocument(), "<p>Hi</p>") {
		t.Errorf("preview = %s, want initial text", surface.lastDocument())
	}
}

func TestEditorRevealUsesLoopForAck(t *testing.T) {
	loop, ed, surface := newTestEditor(t, EditorOptions{})

	loop.Do(func() { ed.RevealSolution() })
	var markup string
	loop.Do(func() { markup, _ = ed.Instance.Current() })
	if markup != "<p>Done</p>" {
		t.Errorf("current = %q, want solution", markup)
	}
	if labels := surface.labelHistory(); len(labels) != 1 || labels[0] != SolutionShownLabel {
		t.Errorf("labels = %v, want acknowledgment", labels)
	}
	loop.Do(func() { ed.Close() })
}
