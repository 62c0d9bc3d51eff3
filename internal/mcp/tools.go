package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchSiteTool defines the search_site MCP tool.
var searchSiteTool = mcp.NewTool("search_site",
	mcp.WithDescription("Search the lessons, guides, resources and concepts of the site. Returns matching pages grouped by type."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Text to look for in titles, keywords and descriptions"),
	),
	mcp.WithString("type_filter",
		mcp.Description("Only return results of this type"),
		mcp.Enum("Lesson", "Guide", "Resource", "Concept"),
	),
)

// listThemesTool defines the list_themes MCP tool.
var listThemesTool = mcp.NewTool("list_themes",
	mcp.WithDescription("List the site themes with their stylesheets and the visual changes each one makes."),
)

// composePreviewTool defines the compose_preview MCP tool.
var composePreviewTool = mcp.NewTool("compose_preview",
	mcp.WithDescription("Compose the HTML document a code playground shows for the given markup and stylesheet."),
	mcp.WithString("html",
		mcp.Required(),
		mcp.Description("Body markup of the preview"),
	),
	mcp.WithString("css",
		mcp.Description("Stylesheet applied to the markup"),
	),
)

// getPlaygroundsTool defines the get_playgrounds MCP tool.
var getPlaygroundsTool = mcp.NewTool("get_playgrounds",
	mcp.WithDescription("Get the starting code and solution of every code playground on a page."),
	mcp.WithString("page",
		mcp.Required(),
		mcp.Description("Page path relative to the site root, e.g. lessons/03-css-basics.html"),
	),
)
