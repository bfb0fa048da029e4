// Package goquery implements the kabar index and article parsers with
// CSS selectors over github.com/PuerkitoBio/goquery documents.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kabar"
)

// Ensure IndexParser implements kabar.IndexParser at compile time.
var _ kabar.IndexParser = (*IndexParser)(nil)

// IndexParser extracts article URLs from a site's index page.
type IndexParser struct {
	selector string
}

// NewIndexParser creates an IndexParser using the site's index selector.
func NewIndexParser(site *kabar.Site) *IndexParser {
	return &IndexParser{selector: site.IndexSelector}
}

// ParseIndex returns the href of every anchor matching the index selector,
// in document order. Anchors without an href are skipped. The hrefs are
// neither deduplicated nor resolved.
func (p *IndexParser) ParseIndex(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, kabar.Errorf(kabar.EINVALID, "failed to parse HTML: %v", err)
	}

	urls := []string{}
	doc.Find(p.selector).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists {
			return
		}
		urls = append(urls, href)
	})

	return urls, nil
}
