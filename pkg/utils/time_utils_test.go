package utils

import (
	"testing"
	"time"
)

func TestDaysOverdueBoundaries(t *testing.T) {
	due := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
		want int
	}{
		{"twelve hours before due", due.Add(-12 * time.Hour), -1},
		{"at the due moment", due, 0},
		{"twelve hours after due", due.Add(12 * time.Hour), 0},
		{"one full day after due", due.Add(24 * time.Hour), 1},
		{"a week after due", due.AddDate(0, 0, 7), 7},
		{"a week before due", due.AddDate(0, 0, -7), -7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysOverdue(tc.now, due); got != tc.want {
				t.Fatalf("got %d want %d", got, tc.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)); got != "January 1, 2024" {
		t.Fatalf("got %q", got)
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Fatalf("zero time should format empty, got %q", got)
	}
}
