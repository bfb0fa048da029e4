package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/kabar"
	"github.com/fwojciec/kabar/fs"
	"github.com/fwojciec/kabar/gofeed"
	"github.com/fwojciec/kabar/goquery"
	kabarhttp "github.com/fwojciec/kabar/http"
	"github.com/fwojciec/kabar/readability"
	"github.com/fwojciec/kabar/rod"
	kabarslog "github.com/fwojciec/kabar/slog"
	"github.com/fwojciec/kabar/trafilatura"
	"github.com/fwojciec/kabar/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher replaces the network fetcher. Set before calling Run().
	Fetcher kabar.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("kabar"),
		kong.Description("Extract news articles from an Indonesian news site index"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'kabar --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	site := kabar.Viva()
	if cli.Site != "" {
		site, err = yaml.LoadSite(cli.Site)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: KABAR_SITE or --site must point to a YAML site profile")
			return err
		}
	}
	deps.Site = site

	var opts []goquery.Option
	switch cli.Fallback {
	case "readability":
		opts = append(opts, goquery.WithFallback(readability.NewExtractor(site)))
	case "trafilatura":
		opts = append(opts, goquery.WithFallback(trafilatura.NewExtractor(site)))
	}
	var index kabar.IndexParser = goquery.NewIndexParser(site)
	if site.IndexFormat == kabar.IndexRSS {
		index = gofeed.NewIndexParser()
	}
	deps.Index = kabarslog.NewLoggingIndexParser(index, deps.Logger)
	deps.Articles = kabarslog.NewLoggingArticleParser(goquery.NewArticleParser(site, opts...), deps.Logger)

	// Wire command-specific dependencies based on command
	cmd := kongCtx.Command()
	if cmd == "urls" || cmd == "scrape" {
		fetcher, err := m.fetcher(cli, site)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()
		deps.Fetcher = kabarslog.NewLoggingFetcher(fetcher, deps.Logger)
	}

	if cmd == "scrape" && cli.Scrape.Out != "" {
		deps.Writer = fs.NewJSONWriter(cli.Scrape.Out)
	}

	return kongCtx.Run(deps)
}

func (m *Main) fetcher(cli *CLI, site *kabar.Site) (kabar.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}
	if cli.Browser {
		return rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithUserAgent(site.UserAgent),
		)
	}
	return kabarhttp.NewFetcher(
		kabarhttp.WithTimeout(cli.Timeout),
		kabarhttp.WithUserAgent(site.UserAgent),
	), nil
}
