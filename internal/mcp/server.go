package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/webstarter/internal/live"
	"github.com/ziadkadry99/webstarter/internal/search"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes site search and playground tools.
type Server struct {
	index    []search.Document
	registry live.Registry
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server. A nil index means the built-in site
// index; registry resolves the playgrounds of a page.
func NewServer(index []search.Document, registry live.Registry) *Server {
	if index == nil {
		index = search.BuildIndex()
	}
	s := &Server{
		index:    index,
		registry: registry,
	}

	s.mcp = server.NewMCPServer(
		"webstarter",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchSiteTool, s.handleSearchSite)
	s.mcp.AddTool(listThemesTool, s.handleListThemes)
	s.mcp.AddTool(composePreviewTool, s.handleComposePreview)
	if s.registry != nil {
		s.mcp.AddTool(getPlaygroundsTool, s.handleGetPlaygrounds)
	}
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
