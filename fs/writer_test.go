package fs_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/kabar"
	"github.com/fwojciec/kabar/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic JSON Output
// A scrape result replaces the output file in one step

func sampleArticles() []*kabar.Article {
	img := "http://a.test/1.jpg"
	return []*kabar.Article{
		{URL: "http://a.test/1", Title: "Satu", Date: 1463470200000, Img: &img, Content: "Isi <satu> & \"dua\"", Source: "Viva"},
		{URL: "http://a.test/2", Title: "Dua", Date: 1451610000000, Content: "Isi dua", Source: "Viva"},
	}
}

func TestEncodeArticles(t *testing.T) {
	t.Parallel()

	t.Run("writes indented array without html escaping", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := fs.EncodeArticles(&buf, sampleArticles())

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "\n  {\n    \"url\": \"http://a.test/1\"")
		assert.Contains(t, buf.String(), `Isi <satu> & \"dua\"`)
		assert.Contains(t, buf.String(), `"img": "http://a.test/1.jpg"`)
	})

	t.Run("writes empty array for nil", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := fs.EncodeArticles(&buf, nil)

		require.NoError(t, err)
		assert.Equal(t, "[]\n", buf.String())
	})
}

func TestJSONWriter_WriteArticles(t *testing.T) {
	t.Parallel()

	t.Run("writes articles to the output path", func(t *testing.T) {
		t.Parallel()

		// Given a writer targeting a nested path
		path := filepath.Join(t.TempDir(), "out", "viva.json")
		w := fs.NewJSONWriter(path)

		// When I write a result
		err := w.WriteArticles(context.Background(), sampleArticles())
		require.NoError(t, err)

		// Then the file holds the articles in order
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var got []*kabar.Article
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, sampleArticles(), got)
	})

	t.Run("replaces existing output and leaves no temp files", func(t *testing.T) {
		t.Parallel()

		// Given an existing output file
		dir := t.TempDir()
		path := filepath.Join(dir, "viva.json")
		require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

		// When I write a new result
		err := fs.NewJSONWriter(path).WriteArticles(context.Background(), sampleArticles()[:1])
		require.NoError(t, err)

		// Then only the new file remains
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "viva.json", entries[0].Name())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "stale")
		assert.Contains(t, string(data), "Satu")
	})

	t.Run("keeps previous output when an article is invalid", func(t *testing.T) {
		t.Parallel()

		// Given an existing output file
		dir := t.TempDir()
		path := filepath.Join(dir, "viva.json")
		require.NoError(t, os.WriteFile(path, []byte("[]\n"), 0o644))

		// When a result holds an article with a query string in its URL
		articles := sampleArticles()
		articles[1].URL = "http://a.test/2?utm=x"
		err := fs.NewJSONWriter(path).WriteArticles(context.Background(), articles)

		// Then the write is rejected and nothing changed on disk
		require.Error(t, err)
		assert.Equal(t, kabar.EINVALID, kabar.ErrorCode(err))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("honors canceled context", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "viva.json")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := fs.NewJSONWriter(path).WriteArticles(ctx, sampleArticles())

		require.ErrorIs(t, err, context.Canceled)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}
