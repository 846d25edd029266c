package fs

import "time"

// ParentName is the synthetic entry that always heads a listing.
const ParentName = ".."

// Entry represents a single row in the directory listing.
type Entry struct {
	Name      string
	FullPath  string
	IsDir     bool
	IsSymlink bool
	Meta      Metadata
}

// Metadata carries the stat columns shown next to an entry. Unknown marks the
// sentinel record returned when the stat call failed; formatters must render
// placeholder columns for it instead of treating it as an error.
type Metadata struct {
	ModeString string
	NLink      int
	Owner      string
	Group      string
	SizeBytes  int64
	ModTime    time.Time
	Unknown    bool
}

// UnknownMetadata is the sentinel record for unreadable entries.
func UnknownMetadata() Metadata {
	return Metadata{
		ModeString: "??????????",
		Owner:      "?",
		Group:      "?",
		Unknown:    true,
	}
}
