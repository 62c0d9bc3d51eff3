package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ziadkadry99/webstarter/internal/config"
)

func TestLoadSiteBuiltIn(t *testing.T) {
	s, err := loadSite(config.DefaultConfig())
	if err != nil {
		t.Fatalf("loadSite() error: %v", err)
	}
	if _, ok := s.Page("lessons/03-css-basics.html"); !ok {
		t.Error("built-in lessons missing CSS Basics")
	}
}

func TestLoadSiteContentDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.md"), []byte("# Mine\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.ContentDir = dir
	s, err := loadSite(cfg)
	if err != nil {
		t.Fatalf("loadSite() error: %v", err)
	}
	if len(s.Pages()) != 1 {
		t.Errorf("pages = %d, want 1", len(s.Pages()))
	}

	cfg.ContentDir = filepath.Join(dir, "index.md")
	if _, err := loadSite(cfg); err == nil {
		t.Error("expected error for a file as content directory")
	}

	cfg.ContentDir = filepath.Join(dir, "missing")
	if _, err := loadSite(cfg); err == nil {
		t.Error("expected error for a missing content directory")
	}
}

func TestLiveOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SearchDebounceMS = 150
	cfg.PasteDelayMS = 20

	opts := liveOptions(cfg, nil, nil)
	if opts.Search.Debounce != 150*time.Millisecond {
		t.Errorf("search debounce = %v", opts.Search.Debounce)
	}
	if opts.Editor.PasteDelay != 20*time.Millisecond {
		t.Errorf("paste delay = %v", opts.Editor.PasteDelay)
	}
	if opts.AckDuration != 2*time.Second {
		t.Errorf("ack duration = %v", opts.AckDuration)
	}
	if opts.Search.MinQueryLength != 2 {
		t.Errorf("min query length = %d", opts.Search.MinQueryLength)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("abcdefghij", 4); got != "abcd..." {
		t.Errorf("truncate = %q", got)
	}
}

func TestBuildHelpNamesStaticLimits(t *testing.T) {
	for _, want := range []string{"search box is disabled", "do not update its preview", "webstarter serve"} {
		if !strings.Contains(buildCmd.Long, want) {
			t.Errorf("build help missing %q", want)
		}
	}
}
