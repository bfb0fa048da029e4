package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/kabar"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Site     *kabar.Site
	Fetcher  kabar.Fetcher
	Index    kabar.IndexParser
	Articles kabar.ArticleParser

	// Writer receives scrape results. Nil writes JSON to Stdout.
	Writer kabar.ArticleWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Site     string        `type:"path" env:"KABAR_SITE" help:"YAML site profile (defaults to viva.co.id)"`
	Browser  bool          `short:"b" help:"Render pages in headless Chrome"`
	Fallback string        `enum:"none,readability,trafilatura" default:"none" help:"Extractor used when the content container is missing (${enum})"`
	Timeout  time.Duration `short:"t" default:"30s" help:"Fetch timeout per page"`
	Verbose  bool          `short:"v" help:"Log every fetch and parse to stderr"`

	URLs   URLsCmd   `cmd:"" name:"urls" help:"List the article URLs on the index page"`
	Scrape ScrapeCmd `cmd:"" help:"Scrape every article on the index page as JSON"`
	Parse  ParseCmd  `cmd:"" help:"Parse a saved article page"`
}

// URLsCmd is the "urls" subcommand.
type URLsCmd struct{}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	KeepGoing   bool   `short:"k" help:"Skip articles that fail instead of aborting"`
	Out         string `short:"o" type:"path" help:"Write JSON to a file instead of stdout"`
	Concurrency int    `short:"c" default:"0" help:"Concurrent article fetch limit (0 = unlimited)"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File string `arg:"" type:"existingfile" help:"HTML file of an article page"`
}
