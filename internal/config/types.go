package config

// FileName is the configuration file looked up in the working directory.
const FileName = ".webstarter.yml"

// Config is the top-level webstarter configuration, corresponding to .webstarter.yml.
type Config struct {
	ContentDir      string   `yaml:"content_dir" koanf:"content_dir"` // empty serves the built-in lessons
	OutputDir       string   `yaml:"output_dir" koanf:"output_dir"`
	DataDir         string   `yaml:"data_dir" koanf:"data_dir"`
	SiteTitle       string   `yaml:"site_title" koanf:"site_title"`
	Port            int      `yaml:"port" koanf:"port"`
	Include         []string `yaml:"include" koanf:"include"`
	Exclude         []string `yaml:"exclude" koanf:"exclude"`
	DefaultTheme    string   `yaml:"default_theme" koanf:"default_theme"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Watch           bool     `yaml:"watch" koanf:"watch"`

	SearchDebounceMS int `yaml:"search_debounce_ms" koanf:"search_debounce_ms"`
	EditDebounceMS   int `yaml:"edit_debounce_ms" koanf:"edit_debounce_ms"`
	PasteDelayMS     int `yaml:"paste_delay_ms" koanf:"paste_delay_ms"`
	AckDurationMS    int `yaml:"ack_duration_ms" koanf:"ack_duration_ms"`
	MinQueryLength   int `yaml:"min_query_length" koanf:"min_query_length"`
	SearchCacheSize  int `yaml:"search_cache_size" koanf:"search_cache_size"`

	RateLimitRPS   float64 `yaml:"rate_limit_rps" koanf:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst" koanf:"rate_limit_burst"`
}
