package format

import (
	"testing"
	"time"
)

func TestPoints(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{85, "85"},
		{1200, "1,200"},
		{1234567, "1,234,567"},
		{-500, "-500"},
		{-12500, "-12,500"},
	}
	for _, c := range cases {
		if got := Points(c.in); got != c.want {
			t.Errorf("Points(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRelative(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-time.Minute), "1 minute ago"},
		{now.Add(-45 * time.Minute), "45 minutes ago"},
		{now.Add(-3 * time.Hour), "3 hours ago"},
		{now.AddDate(0, 0, -5), "5 days ago"},
		{now.AddDate(0, 0, -65), "2 months ago"},
		{now.AddDate(-1, -1, 0), "1 year ago"},
	}
	for _, c := range cases {
		if got := Relative(c.at, now); got != c.want {
			t.Errorf("Relative(%v) = %q, want %q", c.at, got, c.want)
		}
	}
}

func TestFileSize(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for _, c := range cases {
		if got := FileSize(c.in); got != c.want {
			t.Errorf("FileSize(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDateZero(t *testing.T) {
	if got := Date(time.Time{}); got != "" {
		t.Errorf("Date(zero) = %q, want empty", got)
	}
	if got := DateTime(time.Time{}); got != "" {
		t.Errorf("DateTime(zero) = %q, want empty", got)
	}
}
