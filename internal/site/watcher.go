package site

import (
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
)

// reloadQuiet collapses the burst of events an editor save produces.
const reloadQuiet = 200 * time.Millisecond

// Watcher reloads content when markdown files under a directory change.
type Watcher struct {
	watcher  *fsnotify.Watcher
	rootDir  string
	onReload func() error
	debounce func(func())
	done     chan struct{}
	verbose  bool
}

// NewWatcher creates a watcher for rootDir and its subdirectories.
func NewWatcher(rootDir string, onReload func() error, verbose bool) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fsWatcher,
		rootDir:  rootDir,
		onReload: onReload,
		debounce: debounce.New(reloadQuiet),
		done:     make(chan struct{}),
		verbose:  verbose,
	}

	if err := w.addDirectoryRecursive(rootDir); err != nil {
		fsWatcher.Close()
		return nil, err
	}
	return w, nil
}

// addDirectoryRecursive adds a directory and all its non-hidden
// subdirectories to the watcher.
func (w *Watcher) addDirectoryRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return err
		}
		if w.verbose {
			log.Printf("site: watching %s", path)
		}
		return nil
	})
}

// Start begins watching in the background.
func (w *Watcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				w.handle(event)

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				log.Printf("site: watch error: %v", err)

			case <-w.done:
				return
			}
		}
	}()
}

func (w *Watcher) handle(event fsnotify.Event) {
	// New directories need watching before their files can be seen.
	if event.Has(fsnotify.Create) {
		if err := w.addDirectoryRecursive(event.Name); err != nil && w.verbose {
			log.Printf("site: watching %s: %v", event.Name, err)
		}
	}

	if !strings.EqualFold(filepath.Ext(event.Name), ".md") {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	if w.verbose {
		rel, err := filepath.Rel(w.rootDir, event.Name)
		if err != nil {
			rel = event.Name
		}
		log.Printf("site: %s changed", rel)
	}
	w.debounce(func() {
		if err := w.onReload(); err != nil {
			log.Printf("site: reload failed: %v", err)
			return
		}
		log.Printf("site: content reloaded")
	})
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}
