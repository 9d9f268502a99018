package utils

import (
	"math"
	"time"
)

func NowUnixSeconds() int64 { return time.Now().Unix() }

// DaysOverdue is the whole number of days now is past due. Negative
// while the due date is still in the future (floor, so 12h before due
// is -1, 12h after due is 0).
func DaysOverdue(now, due time.Time) int {
	return int(math.Floor(now.Sub(due).Hours() / 24))
}

// DaysSince is the whole number of days elapsed since t.
func DaysSince(now, t time.Time) int {
	return int(math.Floor(now.Sub(t).Hours() / 24))
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
