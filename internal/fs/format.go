package fs

import (
	"fmt"
	"time"
)

// HumanSize renders a byte count with 1024-based units, one decimal place
// below 10 units and none above.
func HumanSize(sizeBytes int64) string {
	if sizeBytes < 1024 {
		return fmt.Sprintf("%dB", sizeBytes)
	}

	size := float64(sizeBytes)
	for _, unit := range []string{"K", "M", "G", "T"} {
		size /= 1024.0
		if size < 1024 {
			if size < 10 {
				return fmt.Sprintf("%.1f%s", size, unit)
			}
			return fmt.Sprintf("%.0f%s", size, unit)
		}
	}
	size /= 1024.0
	return fmt.Sprintf("%.0fP", size)
}

// FormatModTime renders a modification time the way ls does: month, day and
// clock time within the current year, month, day and year otherwise.
func FormatModTime(t, now time.Time) string {
	if t.Year() != now.Year() {
		return t.Format("Jan _2  2006")
	}
	return t.Format("Jan _2 15:04")
}

// FormatColumns renders the fixed-width metadata prefix for a listing row.
func FormatColumns(meta Metadata, now time.Time) string {
	if meta.Unknown {
		return fmt.Sprintf("%s %3s %-8s %-8s %8s %12s", meta.ModeString, "?", "?", "?", "?", "?")
	}
	return fmt.Sprintf("%s %3d %-8s %-8s %8s %12s",
		meta.ModeString,
		meta.NLink,
		meta.Owner,
		meta.Group,
		HumanSize(meta.SizeBytes),
		FormatModTime(meta.ModTime, now),
	)
}
