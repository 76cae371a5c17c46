// Package dates centralizes the tolerant date parsing shared by the
// normalization pipeline, the derivation queries, and the report builder.
package dates

import (
	"strings"
	"time"
)

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse attempts the known date shapes in order. The second return is
// false when the input is empty or matches none of them; callers choose
// their own fallback (placeholder text, epoch ordering, current time).
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SameDay reports whether two instants fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// MonthKey returns the "2006-01" bucket key for an instant.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// MonthLabel renders a bucket key as a display label ("January 2006").
// Unparseable keys are returned unchanged.
func MonthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("January 2006")
}
