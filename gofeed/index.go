// Package gofeed reads article URLs from RSS and Atom feeds, for sites that
// publish a feed in place of an HTML index page.
package gofeed

import (
	"github.com/fwojciec/kabar"
	"github.com/mmcdole/gofeed"
)

// Ensure IndexParser implements kabar.IndexParser at compile time.
var _ kabar.IndexParser = (*IndexParser)(nil)

// IndexParser extracts item links from a feed document.
type IndexParser struct{}

// NewIndexParser creates a new IndexParser.
func NewIndexParser() *IndexParser {
	return &IndexParser{}
}

// ParseIndex returns the link of every feed item in feed order.
// Items without a link are skipped.
func (p *IndexParser) ParseIndex(feed string) ([]string, error) {
	f, err := gofeed.NewParser().ParseString(feed)
	if err != nil {
		return nil, kabar.Errorf(kabar.EINVALID, "failed to parse feed: %v", err)
	}

	urls := make([]string, 0, len(f.Items))
	for _, item := range f.Items {
		if item.Link == "" {
			continue
		}
		urls = append(urls, item.Link)
	}
	return urls, nil
}
