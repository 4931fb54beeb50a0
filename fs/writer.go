// Package fs provides file-based storage for extraction results.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/htmltext"
)

// SourceToPath converts a result source (URL or file path) to a relative
// output path. Example: https://example.com/blog/post → blog/post.txt
func SourceToPath(source string) (string, error) {
	if source == "" {
		return "", htmltext.Errorf(htmltext.EINVALID, "source is required")
	}

	u, err := url.Parse(source)
	if err != nil || u.Host == "" {
		// Local file: keep the base name, swap the extension.
		base := filepath.Base(source)
		if ext := filepath.Ext(base); ext != "" {
			base = strings.TrimSuffix(base, ext)
		}
		return base + ".txt", nil
	}

	path := u.Path

	// Handle root or trailing slash → index.txt
	if path == "" || path == "/" {
		return "index.txt", nil
	}

	// Remove leading slash
	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.txt in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index.txt", nil
	}

	// Otherwise swap any extension for .txt
	if ext := filepath.Ext(path); ext != "" {
		path = strings.TrimSuffix(path, ext)
	}
	return path + ".txt", nil
}

// FormatResult formats a result with YAML frontmatter.
func FormatResult(res *htmltext.Result) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(res.Source)
	b.WriteString("\ntitle: ")
	b.WriteString(res.Title)
	b.WriteString("\nextracted: ")
	b.WriteString(res.ExtractedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(res.Data)
	return b.String()
}

// Ensure Writer implements htmltext.ResultWriter at compile time.
var _ htmltext.ResultWriter = (*Writer)(nil)

// Writer writes extraction results as text files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteResult writes a result to disk as a text file.
func (w *Writer) WriteResult(ctx context.Context, res *htmltext.Result) error {
	relPath, err := SourceToPath(res.Source)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content := FormatResult(res)
	return os.WriteFile(fullPath, []byte(content), 0644)
}
