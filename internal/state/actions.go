package state

// Action is the base interface for all state mutations.
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type GoParentAction struct{}
type EnterDirectoryAction struct{}
type ScrollPageUpAction struct{}
type ScrollPageDownAction struct{}
type ScrollToStartAction struct{}
type ScrollToEndAction struct{}

// ChangeDirAction is dispatched after a cd sub-command was validated.
type ChangeDirAction struct {
	Path string
}

// EnterAction is the raw "open the selection" key; the app layer decides
// between descending into a directory, opening the editor, or pick-and-exit.
type EnterAction struct{}

// ===== COMMAND LINE ACTIONS =====

type CommandStartAction struct {
	Seed string
}
type CommandCharAction struct {
	Char rune
}
type CommandBackspaceAction struct{}
type CommandCompleteAction struct{}
type CommandCancelAction struct{}

// CommandCommitAction is handled by the app layer: shell dispatch has side
// effects the reducer must not own.
type CommandCommitAction struct{}

// FilterCommitAction confirms a filter buffer over a freshly listed
// directory.
type FilterCommitAction struct {
	Pattern string
}

// ===== SEARCH SESSION ACTIONS =====

type SearchNextAction struct{}
type SearchPrevAction struct{}

// ===== VIEW ACTIONS =====

type TogglePreviewAction struct{}
type ToggleHiddenAction struct{}
type RefreshAction struct{}
type ResizeAction struct {
	Width  int
	Height int
}
type ErrorDismissAction struct{}

// ===== PROMPT ACTIONS =====

type PromptStartAction struct {
	Kind PromptKind
}
type PromptCharAction struct {
	Char rune
}
type PromptBackspaceAction struct{}
type PromptCancelAction struct{}

// PromptCommitAction is handled by the app layer (filesystem mutation).
type PromptCommitAction struct{}

// ===== PAGER ACTIONS =====

type PagerScrollAction struct {
	Delta int
}
type PagerHomeAction struct{}
type PagerEndAction struct{}

// PagerCloseAction is handled by the app layer so queued outputs can follow.
type PagerCloseAction struct{}

// ===== CLIPBOARD / FILE OPERATIONS (app-handled) =====

type CopyEntryAction struct{}
type CutEntryAction struct{}
type PasteAction struct{}
type YankPathAction struct{}
type OpenExternalAction struct{}
type OpenEditorAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
