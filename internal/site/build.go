package site

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/webstarter/internal/progress"
	"github.com/ziadkadry99/webstarter/internal/theme"
)

// Build writes the static site to outputDir and returns the number of pages
// written. Static pages show the initial playground previews; live search
// and editing need the server.
func (s *Site) Build(outputDir string, reporter progress.Reporter) (int, error) {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return 0, err
	}

	assets, assetBytes, err := writeAssets(outputDir)
	if err != nil {
		return 0, err
	}
	summary := progress.Summary{OutputDir: outputDir, Assets: assets, Bytes: assetBytes}

	t := theme.Resolve(s.opts.DefaultTheme)
	reporter.Start(len(s.pages))
	for i, page := range s.pages {
		n, err := s.writePage(outputDir, page, t)
		if err != nil {
			return i, fmt.Errorf("writing %s: %w", page.Path, err)
		}
		summary.Pages++
		summary.Playgrounds += len(page.Playgrounds)
		summary.Bytes += n
		reporter.PageWritten(i+1, progress.Page{Path: page.Path, Playgrounds: len(page.Playgrounds), Bytes: n})
	}
	reporter.Finish(summary)

	return len(s.pages), nil
}

// countingWriter counts bytes passed to w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func (s *Site) writePage(outputDir string, page *Page, t theme.Theme) (int64, error) {
	outPath := filepath.Join(outputDir, filepath.FromSlash(page.Path))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return 0, err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	cw := &countingWriter{w: f}
	if err := s.RenderPage(cw, page, t, false); err != nil {
		return cw.n, err
	}
	return cw.n, f.Close()
}

// writeAssets writes the base stylesheet, the page script and every theme
// stylesheet. It returns the number of files and bytes written.
func writeAssets(outputDir string) (int, int64, error) {
	files := map[string]string{
		"style.css": cssContent,
		"script.js": jsContent,
	}
	for _, t := range theme.All() {
		if css, ok := theme.StylesheetCSS(t.Key); ok {
			files[filepath.FromSlash(t.Stylesheet)] = css
		}
	}

	var total int64
	for rel, content := range files {
		outPath := filepath.Join(outputDir, rel)
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return 0, 0, err
		}
		if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
			return 0, 0, err
		}
		total += int64(len(content))
	}
	return len(files), total, nil
}
