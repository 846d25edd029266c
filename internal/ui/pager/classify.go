// Package pager classifies captured command output for highlighting in the
// modal output viewer. The classifier is aimed at git diff and git status
// text but degrades to plain emphasis for anything else.
package pager

import (
	"regexp"
	"strings"
)

// LineKind tags one output line for styling.
type LineKind int

const (
	// KindPlain is any line outside a recognized section.
	KindPlain LineKind = iota
	// KindSection is a staged/unstaged banner line, rendered dimmed.
	KindSection
	// KindHint is a "(use ..." helper line inside a section, rendered dimmed.
	KindHint
	// KindHunk carries an @@ ... @@ marker; only the marker span highlights.
	KindHunk
	// KindFileHeader is a +++/--- diff file header, rendered emphasized.
	KindFileHeader
	// KindAddition is a +-prefixed line, or a section line inheriting the
	// staged color.
	KindAddition
	// KindDeletion is a --prefixed line, or a section line inheriting the
	// unstaged color.
	KindDeletion
)

// Line is one classified output line. For KindHunk the text is split into
// the spans before, inside and after the marker; for every other kind only
// Text is set.
type Line struct {
	Kind LineKind
	Text string

	Pre    string
	Marker string
	Post   string
}

type section int

const (
	sectionNone section = iota
	sectionStaged
	sectionUnstaged
)

const (
	stagedBanner   = "Changes to be committed"
	unstagedBanner = "Changes not staged for commit"
)

// hunkMarker matches the minimal @@...@@ span, not trailing context text.
var hunkMarker = regexp.MustCompile(`\s*@@.*?@@`)

// ClassifyLines walks lines top to bottom, carrying section state between
// them, and returns one classified Line per input line.
func ClassifyLines(lines []string) []Line {
	out := make([]Line, 0, len(lines))
	sec := sectionNone

	for _, raw := range lines {
		switch {
		case strings.HasPrefix(raw, stagedBanner):
			sec = sectionStaged
			out = append(out, Line{Kind: KindSection, Text: raw})
			continue
		case strings.HasPrefix(raw, unstagedBanner):
			sec = sectionUnstaged
			out = append(out, Line{Kind: KindSection, Text: raw})
			continue
		case strings.HasPrefix(strings.TrimSpace(raw), "(use ") && sec != sectionNone:
			out = append(out, Line{Kind: KindHint, Text: raw})
			continue
		}

		if loc := hunkMarker.FindStringIndex(raw); loc != nil {
			out = append(out, Line{
				Kind:   KindHunk,
				Text:   raw,
				Pre:    raw[:loc[0]],
				Marker: raw[loc[0]:loc[1]],
				Post:   raw[loc[1]:],
			})
			continue
		}

		switch {
		case strings.HasPrefix(raw, "+++ ") || strings.HasPrefix(raw, "--- "):
			out = append(out, Line{Kind: KindFileHeader, Text: raw})
		case strings.HasPrefix(raw, "+"):
			out = append(out, Line{Kind: KindAddition, Text: raw})
		case strings.HasPrefix(raw, "-"):
			out = append(out, Line{Kind: KindDeletion, Text: raw})
		default:
			switch sec {
			case sectionStaged:
				out = append(out, Line{Kind: KindAddition, Text: raw})
			case sectionUnstaged:
				out = append(out, Line{Kind: KindDeletion, Text: raw})
			default:
				out = append(out, Line{Kind: KindPlain, Text: raw})
			}
		}
	}

	return out
}
