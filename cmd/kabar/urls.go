package main

import (
	"fmt"

	"github.com/fwojciec/kabar/scrape"
)

// Run executes the urls command.
func (c *URLsCmd) Run(deps *Dependencies) error {
	s := &scrape.Scraper{
		Site:    deps.Site,
		Fetcher: deps.Fetcher,
		Index:   deps.Index,
	}

	urls, err := s.ListURLs(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}
	return nil
}
