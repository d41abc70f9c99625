package vlr

import (
	"fmt"
	"strings"
	"time"
)

// Date and time layouts as rendered by the site. Pages are
// inconsistent about abbreviating month names, so both forms are tried.
const (
	listDateLayout       = "Mon, January 2, 2006"
	listDateLayoutAbbrev = "Mon, Jan 2, 2006"
	listTimeLayout       = "3:04 PM"
	historyDateLayout    = "2006/01/02"
	// machineTimestampLayout matches the data-utc-ts attribute the
	// site attaches for client-side timezone conversion.
	machineTimestampLayout = "2006-01-02 15:04:05"
)

// parseSiteTime tries each layout in order and returns the first
// successful parse.
func parseSiteTime(text string, layouts ...string) (time.Time, error) {
	text = strings.TrimSpace(text)
	for _, layout := range layouts {
		t, err := time.Parse(layout, text)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", text)
}

// combineDateTime merges a date-only value with a time-of-day value.
func combineDateTime(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		time.UTC,
	)
}
