// Package trafilatura extracts article bodies with go-trafilatura.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/kabar"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements kabar.Extractor at compile time.
var _ kabar.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates an Extractor for pages of the given site.
func NewExtractor(site *kabar.Site) *Extractor {
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
	}
	if site != nil {
		if u, err := url.Parse(site.IndexURL); err == nil && u.IsAbs() {
			opts.OriginalURL = u
		}
	}
	return &Extractor{opts: opts}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*kabar.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, kabar.Errorf(kabar.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, kabar.Errorf(kabar.EINTERNAL, "trafilatura: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &kabar.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
