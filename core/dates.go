package core

import (
	"fmt"
	"time"
)

// Display formats used across the dashboard.
const (
	DateFormat     = "02-01-2006"
	DateTimeFormat = "02-01-2006 03:04 PM"
	StoreDateFmt   = "2006-01-02" // wire format of the external table store
)

// FormatDate renders a date as DD-MM-YYYY; the zero time renders empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateFormat)
}

// FormatDateTime renders a timestamp as DD-MM-YYYY hh:mm AM/PM; the zero
// time renders empty.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateTimeFormat)
}

// ParseDate parses a date in the store's wire format, then RFC3339, then the
// display format. Malformed input yields the zero time.
func ParseDate(s string) time.Time {
	for _, layout := range []string{StoreDateFmt, time.RFC3339, DateFormat} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// DaysBetween returns the signed number of whole days from a to b (b - a),
// ignoring time of day.
func DaysBetween(a, b time.Time) int {
	a = truncateToDay(a)
	b = truncateToDay(b)
	return int(b.Sub(a).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TimeAgo humanizes how long ago t was relative to now.
func TimeAgo(t, now time.Time) string {
	if t.IsZero() || t.After(now) {
		return "just now"
	}
	delta := now.Sub(t)
	switch {
	case delta >= 24*time.Hour:
		days := int(delta.Hours() / 24)
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	case delta >= time.Hour:
		hours := int(delta.Hours())
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case delta >= time.Minute:
		mins := int(delta.Minutes())
		return fmt.Sprintf("%d minute%s ago", mins, plural(mins))
	default:
		return "just now"
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
