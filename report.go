package kabar

// Result is the tagged outcome of scraping one article URL.
// Exactly one of Article and Err is set.
type Result struct {
	// Position is the URL's index on the index page.
	Position int
	URL      string
	Article  *Article
	Err      error
}

// Report collects per-URL results in index order. Unlike an all-or-nothing
// scrape, a failed page does not discard the other pages.
type Report struct {
	Results []Result
}

// Articles returns the successfully scraped articles in index order.
func (r *Report) Articles() []*Article {
	articles := make([]*Article, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Err == nil && res.Article != nil {
			articles = append(articles, res.Article)
		}
	}
	return articles
}

// Failed returns the results that carry an error.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}
