package dates

import (
	"testing"
	"time"
)

func TestParseKnownLayouts(t *testing.T) {
	cases := []string{
		"2024-12-15T10:00:00Z",
		"2024-12-15T10:00:00.123Z",
		"2024-12-15T10:00:00",
		"2024-12-15 10:00:00",
		"2024-12-15",
	}
	for _, in := range cases {
		got, ok := Parse(in)
		if !ok {
			t.Fatalf("Parse(%q) failed", in)
		}
		if got.Year() != 2024 || got.Month() != time.December || got.Day() != 15 {
			t.Fatalf("Parse(%q) = %v, wrong day", in, got)
		}
	}
}

func TestParseRejectsJunk(t *testing.T) {
	for _, in := range []string{"", "   ", "next tuesday", "15/12/2024"} {
		if _, ok := Parse(in); ok {
			t.Fatalf("Parse(%q) unexpectedly succeeded", in)
		}
	}
}

func TestSameDayUsesUTC(t *testing.T) {
	a := time.Date(2024, 12, 15, 23, 30, 0, 0, time.UTC)
	b := time.Date(2024, 12, 16, 0, 30, 0, 0, time.UTC)
	if SameDay(a, b) {
		t.Fatal("different UTC days reported as same")
	}
	if !SameDay(a, a.Add(10*time.Minute)) {
		t.Fatal("same UTC day reported as different")
	}
}

func TestMonthKeyAndLabel(t *testing.T) {
	k := MonthKey(time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC))
	if k != "2024-12" {
		t.Fatalf("MonthKey = %q", k)
	}
	if got := MonthLabel(k); got != "December 2024" {
		t.Fatalf("MonthLabel = %q", got)
	}
	if got := MonthLabel("garbage"); got != "garbage" {
		t.Fatalf("MonthLabel(garbage) = %q", got)
	}
}
