package slog

import (
	"log/slog"

	"github.com/fwojciec/kabar"
)

var (
	_ kabar.IndexParser   = (*LoggingIndexParser)(nil)
	_ kabar.ArticleParser = (*LoggingArticleParser)(nil)
)

// LoggingIndexParser wraps an IndexParser with debug logging.
type LoggingIndexParser struct {
	next   kabar.IndexParser
	logger *slog.Logger
}

// NewLoggingIndexParser creates a new LoggingIndexParser.
func NewLoggingIndexParser(next kabar.IndexParser, logger *slog.Logger) *LoggingIndexParser {
	return &LoggingIndexParser{next: next, logger: logger}
}

// ParseIndex delegates to the wrapped parser and logs the URL count.
func (p *LoggingIndexParser) ParseIndex(html string) (urls []string, err error) {
	defer func() {
		p.logger.Debug("parse index",
			"count", len(urls),
			"err", err,
		)
	}()
	return p.next.ParseIndex(html)
}

// LoggingArticleParser wraps an ArticleParser with debug logging.
type LoggingArticleParser struct {
	next   kabar.ArticleParser
	logger *slog.Logger
}

// NewLoggingArticleParser creates a new LoggingArticleParser.
func NewLoggingArticleParser(next kabar.ArticleParser, logger *slog.Logger) *LoggingArticleParser {
	return &LoggingArticleParser{next: next, logger: logger}
}

// ParseArticle delegates to the wrapped parser. Failures are logged at warn
// level with their error code.
func (p *LoggingArticleParser) ParseArticle(html string) (*kabar.Article, error) {
	article, err := p.next.ParseArticle(html)
	if err != nil {
		p.logger.Warn("parse article",
			"code", kabar.ErrorCode(err),
			"err", err,
		)
		return nil, err
	}
	p.logger.Debug("parse article",
		"url", article.URL,
		"date", article.PublishedAt(),
		"chars", len(article.Content),
	)
	return article, nil
}
