// Package cmdline implements the dual-mode command buffer: classification of
// what the operator is typing, sub-command splitting, and path
// autocompletion.
package cmdline

import "strings"

// FilterSentinel starts a filter buffer; no shell command can begin with it.
const FilterSentinel = '/'

// Kind is the sub-language a command buffer belongs to. It is decided once
// per edit rather than by scattered prefix checks at use sites.
type Kind int

const (
	// KindShell is the default: the buffer is dispatched to the OS shell.
	KindShell Kind = iota
	// KindFilter marks an incremental regex filter over the entry list.
	KindFilter
	// KindPath marks a cd-style buffer eligible for path autocompletion.
	// It is still dispatched like a shell buffer on commit.
	KindPath
)

// Classify maps a buffer to its sub-language.
func Classify(buffer string) Kind {
	if strings.HasPrefix(buffer, string(FilterSentinel)) {
		return KindFilter
	}
	if buffer == "cd" || strings.HasPrefix(buffer, "cd ") {
		return KindPath
	}
	return KindShell
}

// FilterPattern extracts the regex pattern from a filter buffer.
func FilterPattern(buffer string) string {
	return strings.TrimPrefix(buffer, string(FilterSentinel))
}

// IsLiveFilter reports whether the buffer should drive incremental selection
// updates while still being edited: the sentinel plus at least one pattern
// character.
func IsLiveFilter(buffer string) bool {
	return Classify(buffer) == KindFilter && len(buffer) >= 2
}

// SplitCommands breaks a committed shell buffer into trimmed sub-commands.
// Empty fragments are dropped.
func SplitCommands(buffer string) []string {
	var parts []string
	for _, part := range strings.Split(buffer, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// ParseChangeDir recognizes a cd sub-command and returns its target. A bare
// "cd" yields an empty target, which callers resolve to the home directory.
func ParseChangeDir(part string) (target string, ok bool) {
	if part == "cd" {
		return "", true
	}
	if strings.HasPrefix(part, "cd ") {
		return strings.TrimSpace(part[3:]), true
	}
	return "", false
}
