package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "webstarter",
	Short: "Interactive HTML, CSS and GitHub lessons for beginners",
	Long: `Web Starter serves a beginner-friendly teaching site for HTML, CSS and
GitHub. Pages carry live code playgrounds with instant previews, a
site-wide search and a CSS theme switcher, all driven by the server over
a WebSocket. The same lessons can be built into a static site.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".webstarter.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
