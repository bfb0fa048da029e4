// Package http provides an HTTP-based implementation of kabar.Fetcher
// for sites whose pages are served as static HTML.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/kabar"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements kabar.Fetcher at compile time.
var _ kabar.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP GET requests.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// Defaults to kabar.DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: kabar.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the URL and returns its body decoded to UTF-8 according
// to the response's declared or sniffed charset.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", kabar.Errorf(kabar.EINVALID, "invalid request for %s: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &fetchError{url: url, err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", kabar.Errorf(kabar.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		body = resp.Body
	}

	b, err := io.ReadAll(body)
	if err != nil {
		return "", &fetchError{url: url, err: err}
	}

	return string(b), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// fetchError is a transport failure. It carries the EFETCH code while
// keeping the cause available to errors.Is.
type fetchError struct {
	url string
	err error
}

func (e *fetchError) Error() string {
	return "fetch " + e.url + ": " + e.err.Error()
}

func (e *fetchError) Unwrap() []error {
	return []error{kabar.Errorf(kabar.EFETCH, "fetch %s: %v", e.url, e.err), e.err}
}
