package dateutil

import (
	"strings"
	"time"
)

// installDateLayouts lists the date shapes seen in CRM exports and spreadsheets.
var installDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// ParseDate reads a calendar date from a raw field. Missing or unrecognized
// values report ok=false; callers treat that as "no date", never as an error.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range installDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Year returns the calendar year of a raw date field.
func Year(raw string) (int, bool) {
	t, ok := ParseDate(raw)
	if !ok {
		return 0, false
	}
	return t.Year(), true
}

// InYear reports whether a raw date field parses and falls in the given year.
func InYear(raw string, year int) bool {
	y, ok := Year(raw)
	return ok && y == year
}

// BeginningOfYear returns January 1st of the given year in UTC.
func BeginningOfYear(year int) time.Time {
	return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
}

// EndOfYear returns the last instant of the given year in UTC.
func EndOfYear(year int) time.Time {
	return time.Date(year, 12, 31, 23, 59, 59, 999999999, time.UTC)
}
