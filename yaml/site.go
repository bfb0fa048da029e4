// Package yaml loads site profiles from YAML files.
//
// A profile overrides the built-in Viva defaults field by field, so a file
// only needs the keys that differ:
//
//	source: Viva
//	index_url: https://www.viva.co.id/rss
//	index_format: rss
//	timezone: Asia/Jakarta
//	selectors:
//	  content: div.main-content-detail
//	  strip: [script, iframe]
package yaml

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/fwojciec/kabar"
	"gopkg.in/yaml.v2"
)

// SiteConfig is the on-disk shape of a site profile.
type SiteConfig struct {
	Source      string          `yaml:"source"`
	IndexURL    string          `yaml:"index_url"`
	IndexFormat string          `yaml:"index_format"`
	UserAgent   string          `yaml:"user_agent"`
	Timezone    string          `yaml:"timezone"`
	Selectors   SelectorsConfig `yaml:"selectors"`
	Months      []MonthConfig   `yaml:"months"`
}

// SelectorsConfig holds the CSS selectors of a site profile.
type SelectorsConfig struct {
	Index   string   `yaml:"index"`
	Date    string   `yaml:"date"`
	Content string   `yaml:"content"`
	Strip   []string `yaml:"strip"`
}

// MonthConfig is one entry of the month translation table.
type MonthConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// LoadSite reads the profile at path and returns the resulting site.
func LoadSite(path string) (*kabar.Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading site profile: %w", err)
	}
	site, err := ParseSite(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return site, nil
}

// ParseSite decodes a YAML profile on top of the Viva defaults.
// Unknown keys are rejected.
func ParseSite(data []byte) (*kabar.Site, error) {
	var cfg SiteConfig
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, kabar.Errorf(kabar.EINVALID, "invalid site profile: %v", err)
	}
	return cfg.Site()
}

// Site applies the configured fields over the Viva defaults and validates
// the result.
func (c *SiteConfig) Site() (*kabar.Site, error) {
	site := kabar.Viva()

	setString(&site.Source, c.Source)
	setString(&site.IndexURL, c.IndexURL)
	setString(&site.IndexFormat, c.IndexFormat)
	setString(&site.UserAgent, c.UserAgent)
	setString(&site.IndexSelector, c.Selectors.Index)
	setString(&site.DateSelector, c.Selectors.Date)
	setString(&site.ContentSelector, c.Selectors.Content)
	if c.Selectors.Strip != nil {
		site.StripSelectors = c.Selectors.Strip
	}

	if c.Timezone != "" {
		loc, err := ParseTimezone(c.Timezone)
		if err != nil {
			return nil, err
		}
		site.Location = loc
	}

	if len(c.Months) > 0 {
		site.Months = make([]kabar.MonthName, 0, len(c.Months))
		for _, m := range c.Months {
			if m.From == "" || m.To == "" {
				return nil, kabar.Errorf(kabar.EINVALID, "month entry requires from and to")
			}
			site.Months = append(site.Months, kabar.MonthName{From: m.From, To: m.To})
		}
	}

	if err := site.Validate(); err != nil {
		return nil, err
	}
	return site, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

var offsetRe = regexp.MustCompile(`^(?:UTC|GMT)?([+-])(\d{1,2})(?::?(\d{2}))?$`)

// Eastern Indonesian zones by abbreviation, hours east of UTC.
var zoneAbbrevs = map[string]int{
	"WITA": 8,
	"WIT":  9,
}

// ParseTimezone resolves an IANA zone name ("Asia/Jakarta"), an Indonesian
// abbreviation ("WIB") or a fixed UTC offset ("+07:00", "UTC+7").
func ParseTimezone(s string) (*time.Location, error) {
	if s == "WIB" {
		return kabar.WIB, nil
	}
	if h, ok := zoneAbbrevs[s]; ok {
		return time.FixedZone(s, h*60*60), nil
	}

	if m := offsetRe.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes := 0
		if m[3] != "" {
			minutes, _ = strconv.Atoi(m[3])
		}
		if hours > 14 || minutes > 59 {
			return nil, kabar.Errorf(kabar.EINVALID, "timezone offset out of range: %q", s)
		}
		offset := hours*60*60 + minutes*60
		if m[1] == "-" {
			offset = -offset
		}
		return time.FixedZone(fmt.Sprintf("UTC%s%02d:%02d", m[1], hours, minutes), offset), nil
	}

	loc, err := time.LoadLocation(s)
	if err != nil {
		return nil, kabar.Errorf(kabar.EINVALID, "unknown timezone %q", s)
	}
	return loc, nil
}
