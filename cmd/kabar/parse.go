package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	article, err := deps.Articles.ParseArticle(string(data))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	article.Source = deps.Site.Source

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(article)
}
