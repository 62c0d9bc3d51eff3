package walker

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// DefaultMaxFileSize is the maximum content file size to load (1 MB).
const DefaultMaxFileSize int64 = 1 << 20

// File is one markdown source discovered during traversal.
type File struct {
	RelPath string // Slash-separated path relative to the content root.
	Size    int64
	Content []byte
}

// Config controls the behaviour of the Walk function.
type Config struct {
	Include     []string // Glob patterns: only matching files are included.
	Exclude     []string // Glob patterns: matching files are excluded.
	MaxFileSize int64    // Files larger than this are skipped (0 = use default).
}

// Walk traverses fsys and returns every markdown file that passes filtering,
// in lexical path order.
func Walk(fsys fs.FS, config Config) ([]File, error) {
	maxSize := config.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	var files []File

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			if p != "." && shouldExcludeDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !strings.EqualFold(path.Ext(p), ".md") {
			return nil
		}
		if !MatchesInclude(p, config.Include) || MatchesExclude(p, config.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.Size() > maxSize {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}

		files = append(files, File{RelPath: p, Size: info.Size(), Content: content})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}

	return files, nil
}
