// Package fs writes scrape results to the local filesystem.
package fs

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/kabar"
)

// Ensure JSONWriter implements kabar.ArticleWriter at compile time.
var _ kabar.ArticleWriter = (*JSONWriter)(nil)

// EncodeArticles writes articles to w as an indented JSON array.
// A nil slice is written as an empty array.
func EncodeArticles(w io.Writer, articles []*kabar.Article) error {
	if articles == nil {
		articles = []*kabar.Article{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(articles)
}

// JSONWriter writes a scrape result to a single JSON file.
// The file is written to a temporary sibling first and renamed into place,
// so readers never observe a partial document.
type JSONWriter struct {
	path string
}

// NewJSONWriter creates a JSONWriter for the given output path.
func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{path: path}
}

// WriteArticles validates every article and replaces the output file.
func (w *JSONWriter) WriteArticles(ctx context.Context, articles []*kabar.Article) error {
	for _, a := range articles {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := EncodeArticles(tmp, articles); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), w.path)
}
