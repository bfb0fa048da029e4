package mock

import "github.com/fwojciec/kabar"

// Compile-time interface verification.
var (
	_ kabar.IndexParser   = (*IndexParser)(nil)
	_ kabar.ArticleParser = (*ArticleParser)(nil)
)

// IndexParser is a mock implementation of kabar.IndexParser.
type IndexParser struct {
	ParseIndexFn func(html string) ([]string, error)
}

func (p *IndexParser) ParseIndex(html string) ([]string, error) {
	return p.ParseIndexFn(html)
}

// ArticleParser is a mock implementation of kabar.ArticleParser.
type ArticleParser struct {
	ParseArticleFn func(html string) (*kabar.Article, error)
}

func (p *ArticleParser) ParseArticle(html string) (*kabar.Article, error) {
	return p.ParseArticleFn(html)
}
