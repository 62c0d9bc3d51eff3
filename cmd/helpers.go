package cmd

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/ziadkadry99/webstarter/internal/config"
	"github.com/ziadkadry99/webstarter/internal/live"
	"github.com/ziadkadry99/webstarter/internal/playground"
	"github.com/ziadkadry99/webstarter/internal/search"
	"github.com/ziadkadry99/webstarter/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `webstarter init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// contentFS returns the configured content directory, or the built-in
// lessons when none is set.
func contentFS(cfg *config.Config) (fs.FS, error) {
	if cfg.ContentDir == "" {
		return site.DefaultContent(), nil
	}
	info, err := os.Stat(cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content directory %s is not a directory", cfg.ContentDir)
	}
	return os.DirFS(cfg.ContentDir), nil
}

// loadSite renders every content page.
func loadSite(cfg *config.Config) (*site.Site, error) {
	fsys, err := contentFS(cfg)
	if err != nil {
		return nil, err
	}
	s, err := site.Load(fsys, site.Options{
		Title:        cfg.SiteTitle,
		Include:      cfg.Include,
		Exclude:      cfg.Exclude,
		DefaultTheme: cfg.DefaultTheme,
	})
	if err != nil {
		return nil, fmt.Errorf("loading site: %w", err)
	}
	return s, nil
}

// liveOptions maps the timing settings onto the live channel.
func liveOptions(cfg *config.Config, index []search.Document, cache *search.Cache) live.Options {
	return live.Options{
		Index: index,
		Search: search.SessionOptions{
			Debounce:       config.Duration(cfg.SearchDebounceMS),
			MinQueryLength: cfg.MinQueryLength,
			Cache:          cache,
		},
		Editor: playground.EditorOptions{
			Debounce:   config.Duration(cfg.EditDebounceMS),
			PasteDelay: config.Duration(cfg.PasteDelayMS),
		},
		AckDuration: config.Duration(cfg.AckDurationMS),
	}
}
