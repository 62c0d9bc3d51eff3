package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/webstarter/internal/playground"
	"github.com/ziadkadry99/webstarter/internal/search"
	"github.com/ziadkadry99/webstarter/internal/theme"
)

// handleSearchSite runs a site search over the index.
func (s *Server) handleSearchSite(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}
	if !search.Active(query) {
		return mcp.NewToolResultError(fmt.Sprintf("query must be at least %d characters", search.MinQueryLength)), nil
	}

	res, _ := search.Search(query, s.index)
	docs := res.Documents
	if typeStr := request.GetString("type_filter", ""); typeStr != "" {
		var filtered []search.Document
		for _, d := range docs {
			if string(d.Type) == typeStr {
				filtered = append(filtered, d)
			}
		}
		docs = filtered
	}

	if len(docs) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No results found for %q.", strings.TrimSpace(query))), nil
	}

	return mcp.NewToolResultText(formatSearchResults(docs)), nil
}

// handleListThemes describes every theme.
func (s *Server) handleListThemes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	for i, t := range theme.All() {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s (%s)\n", t.Name, t.Key)
		if t.Stylesheet != "" {
			fmt.Fprintf(&sb, "Stylesheet: %s\n", t.Stylesheet)
		} else {
			sb.WriteString("Stylesheet: none, base styles only\n")
		}
		for _, c := range t.Changes {
			fmt.Fprintf(&sb, "- %s\n", c)
		}
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleComposePreview returns the preview document for html and css.
func (s *Server) handleComposePreview(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	markup, err := request.RequireString("html")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: html"), nil
	}
	style := request.GetString("css", "")

	return mcp.NewToolResultText(playground.ComposeDocument(markup, style)), nil
}

// handleGetPlaygrounds lists the playgrounds of a page with their code.
func (s *Server) handleGetPlaygrounds(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := request.RequireString("page")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: page"), nil
	}

	hosts, ok := s.registry.Playgrounds(strings.TrimPrefix(page, "/"))
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no page %q", page)), nil
	}
	if len(hosts) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("%s has no code playgrounds.", page)), nil
	}

	return mcp.NewToolResultText(formatPlaygrounds(hosts)), nil
}

// formatSearchResults converts search results into a text format grouped
// by document type.
func formatSearchResults(docs []search.Document) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d result(s):\n", len(docs)))

	for _, g := range search.GroupByType(docs) {
		sb.WriteString(fmt.Sprintf("\n## %s\n", g.Type))
		for _, d := range g.Documents {
			sb.WriteString(fmt.Sprintf("\n%s\n", d.Title))
			sb.WriteString(fmt.Sprintf("URL: %s\n", d.URL))
			if d.Description != "" {
				sb.WriteString(d.Description)
				sb.WriteString("\n")
			}
		}
	}

	return sb.String()
}

// formatPlaygrounds prints each playground's decoded source.
func formatPlaygrounds(hosts []playground.Host) string {
	var sb strings.Builder
	for i, h := range hosts {
		if i > 0 {
			sb.WriteString("\n")
		}
		a := h.Attributes
		fmt.Fprintf(&sb, "--- %s ---\n", h.ID)
		writeSource(&sb, "HTML", a.HTML)
		writeSource(&sb, "CSS", a.CSS)
		if a.HasSolution() {
			writeSource(&sb, "Solution HTML", a.SolutionHTML)
			writeSource(&sb, "Solution CSS", a.SolutionCSS)
		}
	}
	return sb.String()
}

func writeSource(sb *strings.Builder, label, encoded string) {
	if encoded == "" {
		return
	}
	fmt.Fprintf(sb, "%s:\n%s\n", label, playground.Decode(encoded))
}
