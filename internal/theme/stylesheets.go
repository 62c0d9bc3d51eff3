package theme

// stylesheets holds the CSS of every non-default theme, keyed by theme key.
// They override the custom properties of the base site stylesheet.
var stylesheets = map[string]string{
	"classic": `/* Classic theme */
:root {
  --color-primary: #7c4a1e;
  --color-primary-dark: #5a3413;
  --color-bg: #fbf6ee;
  --color-surface: #fffdf8;
  --color-text: #3b2a1a;
  --color-muted: #7a6552;
  --color-border: #d9c7b0;
  --font-body: Georgia, "Times New Roman", serif;
  --font-heading: Georgia, "Times New Roman", serif;
  --radius: 2px;
  --shadow: none;
  --space: 1.25rem;
}
body { line-height: 1.8; }
h1, h2, h3 { letter-spacing: 0.02em; }
.navbar { border-bottom: 3px double var(--color-border); }
`,
	"dark": `/* Dark Mode theme */
:root {
  --color-primary: #60a5fa;
  --color-primary-dark: #3b82f6;
  --color-bg: #0f172a;
  --color-surface: #1e293b;
  --color-text: #e2e8f0;
  --color-muted: #94a3b8;
  --color-border: #334155;
  --shadow: 0 1px 3px rgba(0, 0, 0, 0.6);
}
pre, code { background: #020617; color: #e2e8f0; }
mark { background: #facc15; color: #0f172a; }
`,
	"colorful": `/* Colorful theme */
:root {
  --color-primary: #db2777;
  --color-primary-dark: #9d174d;
  --color-bg: #fdf2f8;
  --color-surface: #ffffff;
  --color-text: #4a044e;
  --color-muted: #86198f;
  --color-border: #f0abfc;
  --font-heading: "Comic Sans MS", "Trebuchet MS", sans-serif;
  --radius: 16px;
}
body { background: linear-gradient(135deg, #fdf2f8 0%, #ede9fe 100%); }
.navbar, .code-example, .code-playground, .search-result-card { border: 3px solid var(--color-border); }
h1 { background: linear-gradient(90deg, #db2777, #7c3aed); -webkit-background-clip: text; color: transparent; }
`,
}

// StylesheetCSS returns the stylesheet content of the theme key.
func StylesheetCSS(key string) (string, bool) {
	css, ok := stylesheets[key]
	return css, ok
}
