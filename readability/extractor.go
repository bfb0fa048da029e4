// Package readability extracts article bodies with go-readability. It serves
// as a content fallback for pages whose layout does not match the site's
// content selector.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/kabar"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements kabar.Extractor at compile time.
var _ kabar.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	pageURL *url.URL
}

// NewExtractor creates an Extractor that resolves relative links against
// the site's index URL.
func NewExtractor(site *kabar.Site) *Extractor {
	e := &Extractor{}
	if site != nil {
		if u, err := url.Parse(site.IndexURL); err == nil && u.IsAbs() {
			e.pageURL = u
		}
	}
	return e
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*kabar.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, kabar.Errorf(kabar.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return nil, kabar.Errorf(kabar.EINTERNAL, "readability: %v", err)
	}

	return &kabar.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
