package search

// BuildIndex returns the fixed set of searchable pages of the course, in
// display order. Each call allocates a fresh slice.
func BuildIndex() []Document {
	return []Document{
		// Lessons
		{
			Title:       "HTML Basics",
			Type:        TypeLesson,
			URL:         "lessons/01-html-basics.html",
			Keywords:    []string{"html", "basics", "tags", "elements", "structure", "document", "head", "body", "paragraph", "heading", "link", "anchor"},
			Description: "Learn the foundation of web pages: tags, elements, and structure",
		},
		{
			Title:       "Semantic HTML",
			Type:        TypeLesson,
			URL:         "lessons/02-html-semantics.html",
			Keywords:    []string{"semantic", "html", "meaning", "accessibility", "article", "section", "header", "footer", "nav", "main", "aside"},
			Description: "Use meaningful tags to create well-structured, accessible pages",
		},
		{
			Title:       "CSS Basics",
			Type:        TypeLesson,
			URL:         "lessons/03-css-basics.html",
			Keywords:    []string{"css", "style", "styling", "color", "font", "background", "selector", "property", "value", "stylesheet"},
			Description: "Add style and visual appeal to your HTML pages",
		},
		{
			Title:       "CSS Layout",
			Type:        TypeLesson,
			URL:         "lessons/04-css-layout.html",
			Keywords:    []string{"layout", "css", "flexbox", "grid", "positioning", "display", "float", "margin", "padding", "box model"},
			Description: "Master layout techniques: flexbox, grid, and positioning",
		},
		{
			Title:       "Responsive Design",
			Type:        TypeLesson,
			URL:         "lessons/05-responsive-design.html",
			Keywords:    []string{"responsive", "mobile", "design", "media query", "viewport", "breakpoint", "mobile-first", "tablet", "desktop"},
			Description: "Make your websites look great on all devices",
		},
		{
			Title:       "GitHub Setup",
			Type:        TypeLesson,
			URL:         "lessons/06-github-setup.html",
			Keywords:    []string{"github", "setup", "account", "repository", "repo", "version control", "git"},
			Description: "Create your GitHub account and first repository",
		},
		{
			Title:       "GitHub Workflow",
			Type:        TypeLesson,
			URL:         "lessons/07-github-workflow.html",
			Keywords:    []string{"github", "workflow", "commit", "branch", "pull request", "push", "clone", "fork"},
			Description: "Learn commits, branches, and pull requests",
		},
		{
			Title:       "GitHub Pages",
			Type:        TypeLesson,
			URL:         "lessons/08-github-pages.html",
			Keywords:    []string{"github pages", "deploy", "hosting", "publish", "website", "domain", "free hosting"},
			Description: "Deploy your website for the world to see",
		},

		// Guides
		{
			Title:       "Getting Started with GitHub",
			Type:        TypeGuide,
			URL:         "github-guides/01-getting-started.html",
			Keywords:    []string{"github", "getting started", "introduction", "what is github", "git vs github"},
			Description: "Create your account and understand the basics",
		},
		{
			Title:       "Creating Your First Repository",
			Type:        TypeGuide,
			URL:         "github-guides/02-creating-repo.html",
			Keywords:    []string{"repository", "create repo", "new repository", "initialize", "setup"},
			Description: "Learn how to create and initialize a repo",
		},
		{
			Title:       "Making Your First Commit",
			Type:        TypeGuide,
			URL:         "github-guides/03-first-commit.html",
			Keywords:    []string{"commit", "first commit", "save", "version control", "changes"},
			Description: "Save your code with version control",
		},
		{
			Title:       "Branches and Pull Requests",
			Type:        TypeGuide,
			URL:         "github-guides/04-branches-prs.html",
			Keywords:    []string{"branch", "branches", "pull request", "pr", "merge", "fork"},
			Description: "Work with different versions and collaborate",
		},
		{
			Title:       "Deploying with GitHub Pages",
			Type:        TypeGuide,
			URL:         "github-guides/05-github-pages.html",
			Keywords:    []string{"github pages", "deploy", "deployment", "publish", "hosting", "website"},
			Description: "Publish your website for free",
		},
		{
			Title:       "Collaboration Workflows",
			Type:        TypeGuide,
			URL:         "github-guides/06-collaboration.html",
			Keywords:    []string{"collaboration", "collaborate", "team", "workflow", "together", "shared"},
			Description: "Work with others on shared projects",
		},
		{
			Title:       "Using Browser Developer Tools",
			Type:        TypeGuide,
			URL:         "github-guides/07-browser-devtools.html",
			Keywords:    []string{"developer tools", "devtools", "inspect", "debug", "console", "elements", "css"},
			Description: "Inspect elements, debug code, and test changes",
		},

		// Other pages
		{
			Title:       "Troubleshooting Guide",
			Type:        TypeResource,
			URL:         "troubleshooting.html",
			Keywords:    []string{"troubleshoot", "problem", "error", "fix", "help", "issue", "css not working", "blank page"},
			Description: "Common problems and step-by-step solutions",
		},
		{
			Title:       "Quick Reference",
			Type:        TypeResource,
			URL:         "reference.html",
			Keywords:    []string{"reference", "cheat sheet", "glossary", "tags", "properties", "quick reference", "lookup"},
			Description: "Quick lookup for HTML tags and CSS properties",
		},
		{
			Title:       "Design Resources",
			Type:        TypeResource,
			URL:         "design-resources.html",
			Keywords:    []string{"design", "typography", "color", "accessibility", "readability", "font", "layout"},
			Description: "Learn about typography, readability, and accessibility",
		},

		// Key concepts
		{
			Title:       "HTML Tags",
			Type:        TypeConcept,
			URL:         "reference.html#html-tags",
			Keywords:    []string{"tag", "tags", "html tag", "element", "h1", "p", "div", "span", "a", "img"},
			Description: "HTML tags for structuring content",
		},
		{
			Title:       "CSS Properties",
			Type:        TypeConcept,
			URL:         "reference.html#css-properties",
			Keywords:    []string{"css property", "style", "color", "margin", "padding", "font", "background"},
			Description: "CSS properties for styling elements",
		},
		{
			Title:       "Flexbox Layout",
			Type:        TypeConcept,
			URL:         "lessons/04-css-layout.html",
			Keywords:    []string{"flexbox", "flex", "display flex", "flex direction", "justify content", "align items"},
			Description: "CSS Flexbox for flexible layouts",
		},
		{
			Title:       "CSS Grid",
			Type:        TypeConcept,
			URL:         "lessons/04-css-layout.html",
			Keywords:    []string{"grid", "css grid", "grid layout", "grid template", "grid columns"},
			Description: "CSS Grid for two-dimensional layouts",
		},
		{
			Title:       "Media Queries",
			Type:        TypeConcept,
			URL:         "lessons/05-responsive-design.html",
			Keywords:    []string{"media query", "responsive", "@media", "breakpoint", "mobile", "tablet"},
			Description: "CSS media queries for responsive design",
		},
	}
}

// ReferenceURL is the page suggested when a search finds nothing.
const ReferenceURL = "reference.html"
