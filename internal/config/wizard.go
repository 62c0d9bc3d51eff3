package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/webstarter/internal/theme"
)

// detectContentDir returns the first well-known directory holding lesson
// markdown in the working directory, or "" when none exists.
func detectContentDir() string {
	for _, dir := range []string{"content", "docs", "lessons"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .webstarter.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to webstarter! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Content directory.
	detected := detectContentDir()
	if detected != "" {
		fmt.Printf("Detected content directory: %s\n\n", detected)
	}
	contentPrompt := promptui.Prompt{
		Label:   "Content directory (leave blank for the built-in lessons)",
		Default: detected,
	}
	contentDir, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	cfg.ContentDir = strings.TrimSpace(contentDir)

	// 2. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.SiteTitle,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.SiteTitle = strings.TrimSpace(title)

	// 3. Default theme.
	var themeItems []string
	for _, t := range theme.All() {
		themeItems = append(themeItems, fmt.Sprintf("%-9s %s", t.Key, t.Name))
	}
	themePrompt := promptui.Select{
		Label: "Select the default theme",
		Items: themeItems,
	}
	themeIdx, _, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.DefaultTheme = theme.Keys()[themeIdx]

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:   "Server port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p <= 0 || p > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 5. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static build",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 6. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if excludeStr != "" {
		cfg.Exclude = append(append([]string(nil), DefaultExcludes...), splitAndTrim(excludeStr)...)
	}

	// 7. Live reload.
	if cfg.ContentDir != "" {
		watchPrompt := promptui.Select{
			Label: "Reload pages when content changes?",
			Items: []string{"yes", "no"},
		}
		watchIdx, _, err := watchPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("watch selection: %w", err)
		}
		cfg.Watch = watchIdx == 0
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(FileName); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", FileName)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
