package kabar

import (
	"regexp"
	"strings"
)

var (
	reTitleControl = regexp.MustCompile(`[\r\n\t]`)
	reTabs         = regexp.MustCompile(`\t+`)
	reLineBreaks   = regexp.MustCompile(`( ?\n ?| ?\r ?)+`)
	reSpaces       = regexp.MustCompile("[ \u00a0\u2007\u202f]+")
	reDashes       = regexp.MustCompile(`(–|—|--)+`)
	reCurlyQuotes  = regexp.MustCompile(`[“”]`)
)

// StripQuery removes everything from the first "?" onward.
func StripQuery(rawURL string) string {
	u, _, _ := strings.Cut(rawURL, "?")
	return u
}

// CleanTitle removes every carriage return, newline and tab, then trims
// surrounding whitespace. Removal happens first, so words separated only by
// a newline are joined.
func CleanTitle(title string) string {
	return strings.TrimSpace(reTitleControl.ReplaceAllString(title, ""))
}

// ContentPass is one named step of content normalization.
type ContentPass struct {
	Name  string
	Apply func(string) string
}

// ContentPasses lists the content normalization steps in the order they run.
// Later passes depend on the shape earlier passes leave behind.
var ContentPasses = []ContentPass{
	{"collapse-tabs", func(s string) string { return reTabs.ReplaceAllString(s, " ") }},
	{"collapse-line-breaks", func(s string) string { return reLineBreaks.ReplaceAllString(s, "\n") }},
	{"collapse-spaces", func(s string) string { return reSpaces.ReplaceAllString(s, " ") }},
	{"collapse-dashes", func(s string) string { return reDashes.ReplaceAllString(s, "-") }},
	{"straighten-quotes", func(s string) string { return reCurlyQuotes.ReplaceAllString(s, `"`) }},
	{"strip-leading-junk", func(s string) string { return strings.TrimLeft(s, " -,") }},
	{"strip-trailing-spaces", func(s string) string { return strings.TrimRight(s, " ") }},
	{"trim", strings.TrimSpace},
}

// NormalizeContent cleans extracted article text. An empty input yields an
// empty result.
//
// The passes are repeated until the text stops changing, so the result is
// stable under a second normalization. No pass lengthens the text, so the
// loop terminates.
func NormalizeContent(text string) string {
	for {
		next := normalizeContentOnce(text)
		if next == text {
			return next
		}
		text = next
	}
}

func normalizeContentOnce(text string) string {
	for _, pass := range ContentPasses {
		text = pass.Apply(text)
	}
	return text
}
