package main

import (
	"fmt"

	"github.com/fwojciec/kabar"
	"github.com/fwojciec/kabar/fs"
	"github.com/fwojciec/kabar/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	s := &scrape.Scraper{
		Site:        deps.Site,
		Fetcher:     deps.Fetcher,
		Index:       deps.Index,
		Articles:    deps.Articles,
		Concurrency: c.Concurrency,
	}

	var articles []*kabar.Article
	if c.KeepGoing {
		report, err := s.ScrapeReport(deps.Ctx, c.progress(deps))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}

		articles = report.Articles()
		failed := report.Failed()
		for _, r := range failed {
			fmt.Fprintf(deps.Stderr, "skipped: %v\n", r.Err)
		}
		if len(failed) > 0 && len(articles) == 0 {
			return fmt.Errorf("all %d articles failed", len(failed))
		}
	} else {
		var err error
		articles, err = s.ScrapeAll(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			fmt.Fprintln(deps.Stderr, "Hint: use --keep-going to skip articles that fail")
			return err
		}
	}

	if deps.Writer != nil {
		return deps.Writer.WriteArticles(deps.Ctx, articles)
	}
	return fs.EncodeArticles(deps.Stdout, articles)
}

func (c *ScrapeCmd) progress(deps *Dependencies) scrape.ProgressFunc {
	return func(e scrape.ProgressEvent) {
		switch e.Type {
		case scrape.ProgressStarted:
			deps.Logger.Info("scrape started", "source", deps.Site.Source, "total", e.Total)
		case scrape.ProgressCompleted:
			deps.Logger.Debug("article scraped", "url", e.URL, "completed", e.Completed, "total", e.Total)
		case scrape.ProgressFailed:
			deps.Logger.Debug("article failed", "url", e.URL, "completed", e.Completed, "total", e.Total, "err", e.Error)
		case scrape.ProgressFinished:
			deps.Logger.Info("scrape finished", "source", deps.Site.Source, "total", e.Total)
		}
	}
}
