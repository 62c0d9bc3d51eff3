package theme

import (
	"strings"
)

// Theme is an alternate stylesheet the reader can switch to.
type Theme struct {
	Key        string   `json:"key"`
	Name       string   `json:"name"`
	Stylesheet string   `json:"stylesheet,omitempty"` // relative to the site root; empty for default
	Changes    []string `json:"changes"`
}

// DefaultKey is the theme used when no valid preference is stored.
const DefaultKey = "default"

var themes = []Theme{
	{
		Key:     DefaultKey,
		Name:    "Default",
		Changes: []string{"Clean, modern design", "Blue primary color", "Sans-serif fonts", "Subtle shadows"},
	},
	{
		Key:        "classic",
		Name:       "Classic",
		Stylesheet: "css/themes/classic.css",
		Changes:    []string{"Warm brown color palette", "Serif fonts (Georgia)", "Traditional styling", "Increased spacing"},
	},
	{
		Key:        "dark",
		Name:       "Dark Mode",
		Stylesheet: "css/themes/dark.css",
		Changes:    []string{"Dark background", "Light text", "High contrast", "Modern dark theme"},
	},
	{
		Key:        "colorful",
		Name:       "Colorful",
		Stylesheet: "css/themes/colorful.css",
		Changes:    []string{"Vibrant pink/purple colors", "Playful fonts", "Bold borders", "Gradient backgrounds"},
	},
}

// All returns the themes in switcher order.
func All() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// Keys returns the theme keys in switcher order.
func Keys() []string {
	keys := make([]string, len(themes))
	for i, t := range themes {
		keys[i] = t.Key
	}
	return keys
}

// Lookup returns the theme for key.
func Lookup(key string) (Theme, bool) {
	for _, t := range themes {
		if t.Key == key {
			return t, true
		}
	}
	return Theme{}, false
}

// Resolve returns the theme for key, falling back to the default theme for
// empty or unknown keys.
func Resolve(key string) Theme {
	if t, ok := Lookup(key); ok {
		return t
	}
	t, _ := Lookup(DefaultKey)
	return t
}

// StylesheetHref returns the link href of t for a page at basePath ("" for
// root pages, "../" one level down). It is empty for the default theme.
func StylesheetHref(t Theme, basePath string) string {
	if t.Stylesheet == "" {
		return ""
	}
	return basePath + t.Stylesheet
}

// DecorateTitle appends " (<name> Theme)" to a page title once. Anything after
// " - " in the title is dropped.
func DecorateTitle(title string, t Theme) string {
	if strings.Contains(title, "(") {
		return title
	}
	base, _, _ := strings.Cut(title, " - ")
	if base == "" {
		base = title
	}
	return base + " (" + t.Name + " Theme)"
}
