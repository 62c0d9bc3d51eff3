package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/webstarter/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the site's lessons, guides and resources",
	Long:  `Runs the site search from the command line and prints the matches grouped by type.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().String("type", "", "filter by type: Lesson, Guide, Resource, Concept")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	queryText := args[0]
	typeFilter, _ := cmd.Flags().GetString("type")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !search.ActiveWith(queryText, cfg.MinQueryLength) {
		return fmt.Errorf("query must be at least %d characters", cfg.MinQueryLength)
	}

	res, _ := search.Search(queryText, search.BuildIndex())
	docs := res.Documents
	if typeFilter != "" {
		var filtered []search.Document
		for _, d := range docs {
			if string(d.Type) == typeFilter {
				filtered = append(filtered, d)
			}
		}
		docs = filtered
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if docs == nil {
			docs = []search.Document{}
		}
		return enc.Encode(docs)
	}

	if len(docs) == 0 {
		fmt.Printf("No results found for %q.\n", res.Query)
		return nil
	}

	printSearchResults(docs)
	return nil
}

func printSearchResults(docs []search.Document) {
	fmt.Printf("Found %d results:\n", len(docs))
	for _, g := range search.GroupByType(docs) {
		fmt.Printf("\n%s\n", g.Type)
		for _, d := range g.Documents {
			fmt.Printf("  %s\n", d.Title)
			fmt.Printf("     %s\n", d.URL)
			if d.Description != "" {
				fmt.Printf("     %s\n", truncate(d.Description, 100))
			}
		}
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
