package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/webstarter/internal/mcp"
	"github.com/ziadkadry99/webstarter/internal/search"
	"github.com/ziadkadry99/webstarter/internal/site"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing site search, themes and playground tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		s, err := loadSite(cfg)
		if err != nil {
			return err
		}
		index := search.BuildIndex()

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "webstarter MCP server started on stdio (pages=%d, documents=%d)\n", len(s.Pages()), len(index))

		srv := mcpserver.NewServer(index, site.NewHolder(s))
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
