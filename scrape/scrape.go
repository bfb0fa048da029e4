// Package scrape orchestrates the extraction pipeline: it fetches a site's
// index page, parses the article URLs and scrapes every article concurrently.
package scrape

import (
	"context"
	"fmt"

	"github.com/fwojciec/kabar"
	"golang.org/x/sync/errgroup"
)

// Scraper runs the index → articles pipeline for one site.
type Scraper struct {
	Site     *kabar.Site
	Fetcher  kabar.Fetcher
	Index    kabar.IndexParser
	Articles kabar.ArticleParser

	// Concurrency limits simultaneous article fetches.
	// Zero or negative launches every fetch at once.
	Concurrency int
}

// ProgressEvent reports progress during a scrape.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// ListURLs fetches the index page and returns the article URLs it lists.
func (s *Scraper) ListURLs(ctx context.Context) ([]string, error) {
	html, err := s.Fetcher.Fetch(ctx, s.Site.IndexURL)
	if err != nil {
		return nil, fmt.Errorf("index %s: %w", s.Site.IndexURL, err)
	}

	urls, err := s.Index.ParseIndex(html)
	if err != nil {
		return nil, fmt.Errorf("index %s: %w", s.Site.IndexURL, err)
	}
	return urls, nil
}

// ScrapeAll scrapes every article listed on the index page.
//
// The result is all-or-nothing: the first fetch or parse failure cancels the
// remaining requests and is returned without any articles. Use ScrapeReport
// to keep the articles that did succeed.
// Articles are returned in index order regardless of completion order.
func (s *Scraper) ScrapeAll(ctx context.Context) ([]*kabar.Article, error) {
	urls, err := s.ListURLs(ctx)
	if err != nil {
		return nil, err
	}

	articles := make([]*kabar.Article, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	if s.Concurrency > 0 {
		g.SetLimit(s.Concurrency)
	}
	for i, url := range urls {
		g.Go(func() error {
			article, err := s.scrapeArticle(gctx, url)
			if err != nil {
				return err
			}
			articles[i] = article
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return articles, nil
}

// ScrapeReport scrapes every article listed on the index page, isolating
// failures per URL. Only a failure to fetch or parse the index page itself
// returns an error. The progress callback, if provided, receives events as
// scraping proceeds.
func (s *Scraper) ScrapeReport(ctx context.Context, progress ProgressFunc) (*kabar.Report, error) {
	urls, err := s.ListURLs(ctx)
	if err != nil {
		return nil, err
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	resultCh := make(chan kabar.Result, total)

	var g errgroup.Group
	if s.Concurrency > 0 {
		g.SetLimit(s.Concurrency)
	}

	go func() {
		for i, url := range urls {
			g.Go(func() error {
				article, err := s.scrapeArticle(ctx, url)
				resultCh <- kabar.Result{
					Position: i,
					URL:      url,
					Article:  article,
					Err:      err,
				}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in index order
	results := make([]kabar.Result, total)
	completed := 0
	for result := range resultCh {
		completed++
		results[result.Position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			URL:       result.URL,
		}
		if result.Err != nil {
			event.Type = ProgressFailed
			event.Error = result.Err
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &kabar.Report{Results: results}, nil
}

// scrapeArticle fetches and parses a single article page.
func (s *Scraper) scrapeArticle(ctx context.Context, url string) (*kabar.Article, error) {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("article %s: %w", url, err)
	}

	article, err := s.Articles.ParseArticle(html)
	if err != nil {
		return nil, fmt.Errorf("article %s: %w", url, err)
	}

	article.Source = s.Site.Source
	return article, nil
}
