package config

import (
	"time"

	"github.com/ziadkadry99/webstarter/internal/playground"
	"github.com/ziadkadry99/webstarter/internal/search"
	"github.com/ziadkadry99/webstarter/internal/site"
	"github.com/ziadkadry99/webstarter/internal/theme"
)

// DefaultExcludes are glob patterns left out of the site by default.
var DefaultExcludes = []string{
	"**/README.md",
	"**/CHANGELOG.md",
	"**/LICENSE.md",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:        "_site",
		DataDir:          ".webstarter",
		SiteTitle:        site.DefaultTitle,
		Port:             8080,
		Include:          []string{"**"},
		Exclude:          DefaultExcludes,
		DefaultTheme:     theme.DefaultKey,
		SearchDebounceMS: ms(search.DefaultDebounce),
		EditDebounceMS:   ms(playground.DefaultEditDebounce),
		PasteDelayMS:     ms(playground.DefaultPasteDelay),
		AckDurationMS:    ms(playground.DefaultAckDuration),
		MinQueryLength:   search.MinQueryLength,
		SearchCacheSize:  256,
		RateLimitRPS:     20,
		RateLimitBurst:   40,
	}
}

func ms(d time.Duration) int {
	return int(d / time.Millisecond)
}

// Duration converts a millisecond setting to a time.Duration.
func Duration(msec int) time.Duration {
	return time.Duration(msec) * time.Millisecond
}
