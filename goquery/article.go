package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kabar"
	nethtml "golang.org/x/net/html"
)

// Ensure ArticleParser implements kabar.ArticleParser at compile time.
var _ kabar.ArticleParser = (*ArticleParser)(nil)

// ArticleParser extracts articles from a site's article pages using Open
// Graph meta tags, a microdata publish date and the site's content container.
type ArticleParser struct {
	site     *kabar.Site
	fallback kabar.Extractor
}

// Option configures an ArticleParser.
type Option func(*ArticleParser)

// WithFallback sets the extractor used when a page has no element matching
// the site's content selector. Without a fallback such pages get empty content.
func WithFallback(e kabar.Extractor) Option {
	return func(p *ArticleParser) {
		p.fallback = e
	}
}

// NewArticleParser creates an ArticleParser for the given site.
func NewArticleParser(site *kabar.Site, opts ...Option) *ArticleParser {
	p := &ArticleParser{site: site}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseArticle extracts url, title, date, image and content from the page.
// The first missing or malformed required field aborts the whole page.
func (p *ArticleParser) ParseArticle(html string) (*kabar.Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, kabar.Errorf(kabar.EINVALID, "failed to parse HTML: %v", err)
	}

	rawURL, ok := metaContent(doc, "og:url")
	if !ok {
		return nil, kabar.Errorf(kabar.EMISSING, "meta og:url not found")
	}

	title, ok := metaContent(doc, "og:title")
	if !ok {
		return nil, kabar.Errorf(kabar.EMISSING, "meta og:title not found")
	}

	date, err := p.date(doc)
	if err != nil {
		return nil, err
	}

	content, err := p.content(doc, html)
	if err != nil {
		return nil, err
	}

	article := &kabar.Article{
		URL:     kabar.StripQuery(rawURL),
		Title:   kabar.CleanTitle(title),
		Date:    date,
		Content: content,
	}
	if img, ok := metaContent(doc, "og:image"); ok {
		article.Img = &img
	}

	return article, nil
}

// date reads the inner HTML of the publish date element and converts it to
// milliseconds since the epoch.
func (p *ArticleParser) date(doc *goquery.Document) (int64, error) {
	sel := doc.Find(p.site.DateSelector).First()
	if sel.Length() == 0 {
		return 0, kabar.Errorf(kabar.EMISSING, "publish date element %q not found", p.site.DateSelector)
	}

	raw, err := sel.Html()
	if err != nil {
		return 0, kabar.Errorf(kabar.EINVALID, "failed to render publish date: %v", err)
	}

	return kabar.ParsePublishDate(raw, p.site.Months, p.site.Location)
}

func (p *ArticleParser) content(doc *goquery.Document, html string) (string, error) {
	sel := doc.Find(p.site.ContentSelector)
	if sel.Length() > 0 {
		return visibleText(sel, p.site.StripSelectors), nil
	}

	if p.fallback == nil {
		return "", nil
	}

	extracted, err := p.fallback.Extract(html)
	if err != nil {
		return "", fmt.Errorf("fallback extraction: %w", err)
	}

	fragment, err := goquery.NewDocumentFromReader(strings.NewReader(extracted.ContentHTML))
	if err != nil {
		return "", kabar.Errorf(kabar.EINVALID, "failed to parse extracted content: %v", err)
	}

	return visibleText(fragment.Selection, p.site.StripSelectors), nil
}

// metaContent returns the content attribute of the first Open Graph meta tag
// with the given property.
func metaContent(doc *goquery.Document, property string) (string, bool) {
	return doc.Find(`meta[property="` + property + `"]`).First().Attr("content")
}

// visibleText turns line break elements into newlines, drops the stripped
// descendants and returns the normalized text of sel.
func visibleText(sel *goquery.Selection, strip []string) string {
	sel.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithNodes(&nethtml.Node{Type: nethtml.TextNode, Data: "\n"})
	})
	if len(strip) > 0 {
		sel.Find(strings.Join(strip, ", ")).Remove()
	}
	return kabar.NormalizeContent(sel.Text())
}
