package sanitize

import (
	"strings"
	"time"
)

// canonicalDateLayout is the calendar form all dates are normalized to.
const canonicalDateLayout = "2006-01"

// dateLayouts are the raw formats accepted, tried in order.
var dateLayouts = []string{
	"2006-01",
	"2006-01-02",
	"2006/01",
	"01/2006",
	"Jan 2006",
	"January 2006",
	"2006",
}

// ongoingMarkers mean "still employed here" and normalize to an empty end
// date.
var ongoingMarkers = map[string]bool{
	"present": true,
	"current": true,
	"now":     true,
	"ongoing": true,
}

// NormalizeDate converts a raw date string to canonical "YYYY-MM" form.
// Ongoing markers and empty input normalize to "". Unparsable input returns
// "" with ok=false so the caller can record a warning; it never fails hard.
func NormalizeDate(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", true
	}
	if ongoingMarkers[strings.ToLower(trimmed)] {
		return "", true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(canonicalDateLayout), true
		}
	}

	return "", false
}

// parseCanonical parses a canonical "YYYY-MM" date. Empty input returns the
// zero time.
func parseCanonical(date string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(canonicalDateLayout, date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
