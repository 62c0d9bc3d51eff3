package site

import (
	"embed"
	"io/fs"
)

//go:embed content
var defaultContent embed.FS

// DefaultContent returns the built-in course.
func DefaultContent() fs.FS {
	sub, err := fs.Sub(defaultContent, "content")
	if err != nil {
		panic(err)
	}
	return sub
}
