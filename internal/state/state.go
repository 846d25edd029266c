package state

import (
	"time"

	fsutil "github.com/g0at1/fex/internal/fs"
	searchpkg "github.com/g0at1/fex/internal/search"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// SearchSession mirrors search.Session.
type SearchSession = searchpkg.Session

// statusDuration is how long a transient status message stays visible.
const statusDuration = 1500 * time.Millisecond

// PromptKind selects which file operation a prompt is collecting input for.
type PromptKind int

const (
	PromptCreate PromptKind = iota
	PromptRename
	PromptDelete
)

// PromptState is a one-line modal input at the bottom of the screen.
type PromptState struct {
	Kind   PromptKind
	Label  string
	Buffer string

	// TargetName/TargetPath pin the entry the prompt was opened on, so a
	// background refresh cannot redirect the operation.
	TargetName string
	TargetPath string
}

// PagerState is the modal output viewer: captured command output plus a
// scroll offset. Unlike the listing viewport there is no row that must stay
// visible; the offset is only clamped to the line count.
type PagerState struct {
	Title  string
	Lines  []string
	Offset int
}

// PreviewData is the rendered right-hand preview pane content.
type PreviewData struct {
	IsDir bool
	Lines []string
}

// AppState is the single source of truth.
type AppState struct {
	// Navigation & filesystem
	CurrentPath   string
	Entries       []FileEntry // synthetic ".." first, rest sorted
	SelectedIndex int
	ScrollOffset  int
	ShowHidden    bool

	// Preview pane
	PreviewEnabled bool
	Preview        *PreviewData

	// Command line
	CommandActive bool
	CommandBuffer string

	// Confirmed filter
	Search *SearchSession

	// Modal sub-states
	Prompt *PromptState
	Pager  *PagerState

	// Transient status line message
	StatusMessage string
	StatusExpiry  time.Time

	// Modal error box; any key dismisses it
	ModalError string

	// Header decorations
	Branch        string
	ClipboardHint string

	// Dimensions
	ScreenWidth  int
	ScreenHeight int
}

// ===== HELPER METHODS =====

// VisibleRows is the number of listing rows the terminal can show: the
// header and rule take the top two rows, the bottom is one status row or two
// command-line rows.
func (s *AppState) VisibleRows() int {
	reserved := 3
	if s.CommandActive {
		reserved = 4
	}
	rows := s.ScreenHeight - reserved
	if rows < 1 {
		rows = 1
	}
	return rows
}

// PagerRows is the number of content rows inside the pager box. The box
// takes 80% of the screen; border, title and footer take four rows.
func (s *AppState) PagerRows() int {
	rows := s.ScreenHeight*8/10 - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

// CurrentEntry returns the selected entry, or nil when the listing is empty.
func (s *AppState) CurrentEntry() *FileEntry {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Entries) {
		return nil
	}
	return &s.Entries[s.SelectedIndex]
}

// EntryNames returns the names of the current entries in listing order.
func (s *AppState) EntryNames() []string {
	names := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		names[i] = e.Name
	}
	return names
}

// SetStatus shows a transient status message.
func (s *AppState) SetStatus(message string) {
	s.StatusMessage = message
	s.StatusExpiry = time.Now().Add(statusDuration)
}

// StatusActive reports whether the transient message should still render.
func (s *AppState) StatusActive(now time.Time) bool {
	return s.StatusMessage != "" && now.Before(s.StatusExpiry)
}

// UpdateScroll recomputes the viewport offset so the selection stays
// visible. Safe to call redundantly; the computation is pure.
func (s *AppState) UpdateScroll() {
	s.ScrollOffset = ComputeOffset(len(s.Entries), s.SelectedIndex, s.VisibleRows())
}

// ClampSelection restores the selection invariant after the entry list was
// rebuilt, possibly shorter.
func (s *AppState) ClampSelection() {
	if s.SelectedIndex >= len(s.Entries) {
		s.SelectedIndex = len(s.Entries) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	s.UpdateScroll()
}
