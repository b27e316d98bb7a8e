package format

import (
	"fmt"
	"strings"
	"time"
)

// Clock formats accepted by FormatClock.
const (
	Clock12h = "12h"
	Clock24h = "24h"
)

// FormatDate renders t as a month name followed by an ordinal day,
// e.g. "October 19th".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s %d%s", t.Month(), t.Day(), OrdinalSuffix(t.Day()))
}

// OrdinalSuffix returns the English ordinal suffix for a day of the month.
func OrdinalSuffix(day int) string {
	switch day {
	case 1, 21, 31:
		return "st"
	case 2, 22:
		return "nd"
	case 3, 23:
		return "rd"
	default:
		return "th"
	}
}

// FormatClock renders the time of day in the requested style. Any style other
// than Clock12h or Clock24h means the clock is switched off and "" is returned.
func FormatClock(t time.Time, style string) string {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case Clock12h:
		return t.Format("3:04 PM")
	case Clock24h:
		return t.Format("15:04")
	default:
		return ""
	}
}
