package kabar

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// reDate matches "day month-name year hour:minute" anywhere in the input.
var reDate = regexp.MustCompile(`(\d{1,2})[\s\x{00A0}]+(\p{L}+)[\s\x{00A0}]+(\d{4})\D*?(\d{1,2}):(\d{2})`)

// monthAliases resolves names that are neither English nor an English prefix.
var monthAliases = map[string]time.Month{
	"mei": time.May,
}

// TranslateMonths applies each table entry in order, replacing every
// occurrence of From with To.
func TranslateMonths(s string, table []MonthName) string {
	for _, m := range table {
		s = strings.ReplaceAll(s, m.From, m.To)
	}
	return s
}

// ParseDate parses a translated "day month-name year hour:minute" string
// written in loc. Month names match English names or their three-letter
// prefix, case-insensitively. Returns EDATE if s does not match.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	m := reDate.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, Errorf(EDATE, "date %q does not match day month year hour:minute", s)
	}

	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])

	month, ok := parseMonth(m[2])
	if !ok {
		return time.Time{}, Errorf(EDATE, "date %q: unknown month %q", s, m[2])
	}
	if hour > 23 || minute > 59 {
		return time.Time{}, Errorf(EDATE, "date %q: invalid time of day", s)
	}

	t := time.Date(year, month, day, hour, minute, 0, 0, loc)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, Errorf(EDATE, "date %q: day out of range", s)
	}
	return t, nil
}

// ParsePublishDate translates the month names of raw with table, parses the
// result in loc and returns milliseconds since the epoch.
func ParsePublishDate(raw string, table []MonthName, loc *time.Location) (int64, error) {
	t, err := ParseDate(TranslateMonths(raw, table), loc)
	if err != nil {
		return 0, err
	}
	return t.UTC().UnixMilli(), nil
}

func parseMonth(name string) (time.Month, bool) {
	lower := strings.ToLower(name)
	if m, ok := monthAliases[lower]; ok {
		return m, true
	}
	if len(lower) < 3 {
		return 0, false
	}
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if lower == full || strings.HasPrefix(lower, full[:3]) {
			return m, true
		}
	}
	return 0, false
}
