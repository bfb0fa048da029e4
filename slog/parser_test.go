package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/kabar"
	"github.com/fwojciec/kabar/mock"
	kabarslog "github.com/fwojciec/kabar/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingIndexParser_ParseIndex(t *testing.T) {
	t.Parallel()

	t.Run("logs url count at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.IndexParser{
			ParseIndexFn: func(html string) ([]string, error) {
				return []string{"http://a.test/1", "http://a.test/2", "http://a.test/3"}, nil
			},
		}

		parser := kabarslog.NewLoggingIndexParser(inner, debugLogger(&buf))
		urls, err := parser.ParseIndex("<html></html>")

		require.NoError(t, err)
		assert.Len(t, urls, 3)
		assert.Contains(t, buf.String(), `msg="parse index"`)
		assert.Contains(t, buf.String(), "count=3")
	})

	t.Run("is silent at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.IndexParser{
			ParseIndexFn: func(html string) ([]string, error) {
				return []string{}, nil
			},
		}

		parser := kabarslog.NewLoggingIndexParser(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := parser.ParseIndex("<html></html>")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingArticleParser_ParseArticle(t *testing.T) {
	t.Parallel()

	t.Run("logs parsed article", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ArticleParser{
			ParseArticleFn: func(html string) (*kabar.Article, error) {
				return &kabar.Article{
					URL:     "http://a.test/1",
					Title:   "Judul",
					Date:    1463470200000,
					Content: "Isi berita",
				}, nil
			},
		}

		parser := kabarslog.NewLoggingArticleParser(inner, debugLogger(&buf))
		article, err := parser.ParseArticle("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "Judul", article.Title)
		output := buf.String()
		assert.Contains(t, output, `msg="parse article"`)
		assert.Contains(t, output, "url=http://a.test/1")
		assert.Contains(t, output, "date=2016-05-17T07:30:00.000Z")
		assert.Contains(t, output, "chars=10")
	})

	t.Run("logs failures with error code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ArticleParser{
			ParseArticleFn: func(html string) (*kabar.Article, error) {
				return nil, kabar.Errorf(kabar.EMISSING, "og:title not found")
			},
		}

		parser := kabarslog.NewLoggingArticleParser(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		article, err := parser.ParseArticle("<html></html>")

		require.Error(t, err)
		assert.Nil(t, article)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "code=EMISSING")
	})
}
