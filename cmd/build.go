package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/webstarter/internal/progress"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the site as static HTML",
	Long: `Writes every page, the page script and the theme stylesheets to the
output directory.

Static pages show the initial playground previews and remember the chosen
theme in the browser. They have no live channel: the search box is disabled
and edits to a playground do not update its preview. Use webstarter serve
for searchable pages with editable playgrounds.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	s, err := loadSite(cfg)
	if err != nil {
		return err
	}

	if _, err := s.Build(outputDir, progress.NewReporter()); err != nil {
		return fmt.Errorf("building site: %w", err)
	}
	return nil
}
