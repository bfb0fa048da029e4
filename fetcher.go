package kabar

import "context"

// DefaultUserAgent is the browser user agent sent with every page request.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/48.0.2564.97 Safari/537.36"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the URL and returns the response body as UTF-8 HTML.
	// Returns EFETCH on network failure or a non-success status.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
