// Package rod fetches pages through a headless Chrome browser, for index and
// article pages that only render their markup with JavaScript.
package rod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/kabar"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page navigation.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements kabar.Fetcher at compile time.
var _ kabar.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	userAgent    string
	fetchTimeout time.Duration

	mu       sync.RWMutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	closed   bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.fetchTimeout = d
	}
}

// WithUserAgent overrides the User-Agent reported by every page.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher launches a headless Chrome browser and returns a Fetcher using it.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		userAgent:    kabar.DefaultUserAgent,
		fetchTimeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, kabar.Errorf(kabar.EINTERNAL, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, kabar.Errorf(kabar.EINTERNAL, "connecting to browser: %v", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		return "", kabar.Errorf(kabar.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", fetchFailed(url, err)
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fetchFailed(url, err)
	}
	defer page.Close()

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
		return "", fetchFailed(url, err)
	}

	ctx, cancel := context.WithTimeout(ctx, f.fetchTimeout)
	defer cancel()
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", fetchFailed(url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fetchFailed(url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fetchFailed(url, err)
	}
	return html, nil
}

// Close shuts down the browser and kills the launched process.
// Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true

	err := f.browser.Close()
	f.launcher.Kill()
	return err
}

// LauncherPID returns the process ID of the browser launcher.
func (f *Fetcher) LauncherPID() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.launcher.PID()
}

// fetchFailed tags err with EFETCH while keeping the cause reachable
// through errors.Is.
func fetchFailed(url string, err error) error {
	return fmt.Errorf("%w: %w", kabar.Errorf(kabar.EFETCH, "rendering %s", url), err)
}
