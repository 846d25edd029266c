package cmdline

import (
	"os"
	"path/filepath"
	"strings"
)

// Completion is the outcome of one Tab press over a cd-style fragment.
type Completion struct {
	// Suffix is the text to append to the fragment. Empty when nothing can
	// be completed unambiguously.
	Suffix string
	// IsDir reports that the fragment now names a traversable directory: a
	// unique match whose suffix ends with the path separator. Ambiguous
	// completions are never directory-marked.
	IsDir bool
}

// Complete computes the shell-style completion for a partial path fragment.
// The fragment is split at its last separator; the directory part is resolved
// against baseDir when relative. An unreadable or nonexistent directory fails
// silently with an empty suggestion.
func Complete(fragment, baseDir string) Completion {
	dirPart, partial := filepath.Split(fragment)

	searchDir := dirPart
	if searchDir == "" {
		searchDir = baseDir
	} else if !filepath.IsAbs(searchDir) {
		searchDir = filepath.Join(baseDir, searchDir)
	}

	dirEntries, err := os.ReadDir(searchDir)
	if err != nil {
		return Completion{}
	}

	var candidates []string
	for _, de := range dirEntries {
		if strings.HasPrefix(de.Name(), partial) {
			candidates = append(candidates, de.Name())
		}
	}

	switch len(candidates) {
	case 0:
		return Completion{}
	case 1:
		suffix := candidates[0][len(partial):]
		full := filepath.Join(searchDir, candidates[0])
		info, err := os.Stat(full)
		isDir := err == nil && info.IsDir()
		if isDir {
			suffix += string(os.PathSeparator)
		}
		return Completion{Suffix: suffix, IsDir: isDir}
	default:
		common := longestCommonPrefix(candidates)
		return Completion{Suffix: common[len(partial):]}
	}
}

func longestCommonPrefix(names []string) string {
	prefix := names[0]
	for _, name := range names[1:] {
		for !strings.HasPrefix(name, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}
