package kabar

import (
	"context"
	"strings"
	"time"
)

// Article represents a single news article extracted from an article page.
type Article struct {
	// URL is the canonical article URL with the query string stripped.
	URL   string `json:"url"`
	Title string `json:"title"`

	// Date is the publish time in milliseconds since the epoch, UTC.
	Date int64 `json:"date"`

	// Img is the absolute image URL. Nil when the page declares no image.
	Img *string `json:"img,omitempty"`

	Content string `json:"content"`
	Source  string `json:"source"`
}

// PublishedAt returns the publish time as a UTC time.Time.
func (a *Article) PublishedAt() time.Time {
	return time.UnixMilli(a.Date).UTC()
}

// Validate returns an error if the article violates a record invariant.
func (a *Article) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	if strings.Contains(a.URL, "?") {
		return Errorf(EINVALID, "article URL must not contain a query string: %s", a.URL)
	}
	if strings.ContainsAny(a.Title, "\r\n\t") {
		return Errorf(EINVALID, "article title contains control characters")
	}
	return nil
}

// IndexParser extracts article URLs from an index page.
type IndexParser interface {
	// ParseIndex returns the article hrefs in document order.
	// Returns an empty slice when the page lists no articles.
	ParseIndex(html string) ([]string, error)
}

// ArticleParser extracts an Article from a single article page.
type ArticleParser interface {
	// ParseArticle returns the normalized article. The Source field is left
	// for the caller to fill in.
	// Returns EMISSING if a required element is absent and EDATE if the
	// publish date cannot be parsed.
	ParseArticle(html string) (*Article, error)
}

// ArticleWriter persists a scrape result.
type ArticleWriter interface {
	// WriteArticles stores the articles in order. Implementations must not
	// leave partial output behind on failure.
	WriteArticles(ctx context.Context, articles []*Article) error
}
