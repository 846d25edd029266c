package search

import (
	"fmt"
	"regexp"
)

// Session is a confirmed filter: the compiled pattern, the ordered entry
// indices it matched, and a cyclic cursor over them. A session is invalidated
// by discarding it whenever the directory changes or a new filter is
// confirmed.
type Session struct {
	Pattern *regexp.Regexp
	Matches []int
	Cursor  int
}

// Compile builds the case-insensitive regex for a filter pattern.
func Compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re, nil
}

// MatchIndices scans names in order and returns the indices whose name
// matches re. The synthetic parent and current-directory entries never match.
func MatchIndices(re *regexp.Regexp, names []string) []int {
	var matches []int
	for i, name := range names {
		if name == ".." || name == "." {
			continue
		}
		if re.MatchString(name) {
			matches = append(matches, i)
		}
	}
	return matches
}

// NewSession compiles pattern and builds the match set over names. A nil
// session with a nil error means the pattern matched nothing.
func NewSession(pattern string, names []string) (*Session, error) {
	re, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	matches := MatchIndices(re, names)
	if len(matches) == 0 {
		return nil, nil
	}
	return &Session{Pattern: re, Matches: matches, Cursor: 0}, nil
}

// Current returns the entry index under the cursor.
func (s *Session) Current() int {
	return s.Matches[s.Cursor]
}

// Next advances the cursor cyclically and returns the new entry index.
func (s *Session) Next() int {
	s.Cursor = (s.Cursor + 1) % len(s.Matches)
	return s.Current()
}

// Prev retreats the cursor cyclically and returns the new entry index.
func (s *Session) Prev() int {
	s.Cursor = (s.Cursor - 1 + len(s.Matches)) % len(s.Matches)
	return s.Current()
}
