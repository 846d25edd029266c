package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// List reads dirPath and returns the entry list for it: the synthetic parent
// entry first, everything else sorted lexicographically. Hidden entries
// (dot-prefixed) are skipped unless showHidden is set. Each entry carries its
// metadata; entries whose stat fails still appear, with the sentinel record.
func List(dirPath string, showHidden bool) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dirPath, err)
	}

	names := make([]string, 0, len(dirEntries))
	for _, de := range dirEntries {
		if !showHidden && strings.HasPrefix(de.Name(), ".") {
			continue
		}
		names = append(names, de.Name())
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names)+1)
	entries = append(entries, parentEntry(dirPath))

	for _, rawName := range names {
		fullPath := filepath.Join(dirPath, rawName)
		meta := Stat(fullPath)

		isSymlink := strings.HasPrefix(meta.ModeString, "l")
		isDir := strings.HasPrefix(meta.ModeString, "d")
		if isSymlink {
			if target, err := os.Stat(fullPath); err == nil {
				isDir = target.IsDir()
			}
		}

		entries = append(entries, Entry{
			Name:      norm.NFC.String(rawName),
			FullPath:  fullPath,
			IsDir:     isDir,
			IsSymlink: isSymlink,
			Meta:      meta,
		})
	}

	return entries, nil
}

func parentEntry(dirPath string) Entry {
	parentPath := filepath.Dir(dirPath)
	return Entry{
		Name:     ParentName,
		FullPath: parentPath,
		IsDir:    true,
		Meta:     Stat(parentPath),
	}
}
