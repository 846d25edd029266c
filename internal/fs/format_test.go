package fs

import (
	"testing"
	"time"
)

func TestHumanSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0B"},
		{512, "512B"},
		{1023, "1023B"},
		{1024, "1.0K"},
		{1536, "1.5K"},
		{10 * 1024, "10K"},
		{1024 * 1024, "1.0M"},
		{5 * 1024 * 1024 * 1024, "5.0G"},
		{2 * 1024 * 1024 * 1024 * 1024, "2.0T"},
	}

	for _, c := range cases {
		if got := HumanSize(c.bytes); got != c.want {
			t.Errorf("HumanSize(%d) = %q, want %q", c.bytes, got, c.want)
		}
	}
}

func TestFormatModTime(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	thisYear := time.Date(2026, time.March, 5, 9, 30, 0, 0, time.UTC)
	if got := FormatModTime(thisYear, now); got != "Mar  5 09:30" {
		t.Errorf("Expected 'Mar  5 09:30', got %q", got)
	}

	lastYear := time.Date(2025, time.December, 24, 18, 0, 0, 0, time.UTC)
	if got := FormatModTime(lastYear, now); got != "Dec 24  2025" {
		t.Errorf("Expected 'Dec 24  2025', got %q", got)
	}
}

func TestFormatColumnsUnknownMetadata(t *testing.T) {
	got := FormatColumns(UnknownMetadata(), time.Now())
	want := "??????????   ? ?        ?               ?            ?"
	if got != want {
		t.Errorf("FormatColumns = %q, want %q", got, want)
	}
}
