package state

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode"

	"github.com/g0at1/fex/internal/cmdline"
	searchpkg "github.com/g0at1/fex/internal/search"
)

var userHomeDirFn = os.UserHomeDir

// StateReducer applies Actions to AppState. Side-effectful actions (shell
// dispatch, filesystem mutation, editor) are intercepted by the app layer
// before they reach Reduce.
type StateReducer struct{}

func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case NavigateUpAction:
		if state.SelectedIndex > 0 {
			state.SelectedIndex--
			state.UpdateScroll()
			BuildPreview(state)
		}
		return state, nil

	case NavigateDownAction:
		if state.SelectedIndex < len(state.Entries)-1 {
			state.SelectedIndex++
			state.UpdateScroll()
			BuildPreview(state)
		}
		return state, nil

	case ScrollPageUpAction:
		state.SelectedIndex -= state.VisibleRows()
		state.ClampSelection()
		BuildPreview(state)
		return state, nil

	case ScrollPageDownAction:
		state.SelectedIndex += state.VisibleRows()
		state.ClampSelection()
		BuildPreview(state)
		return state, nil

	case ScrollToStartAction:
		state.SelectedIndex = 0
		state.UpdateScroll()
		BuildPreview(state)
		return state, nil

	case ScrollToEndAction:
		if len(state.Entries) > 0 {
			state.SelectedIndex = len(state.Entries) - 1
		}
		state.UpdateScroll()
		BuildPreview(state)
		return state, nil

	case GoParentAction:
		parent := filepath.Dir(state.CurrentPath)
		if parent == state.CurrentPath {
			return state, nil // already at root
		}
		return state, r.changeDirectory(state, parent)

	case EnterDirectoryAction:
		entry := state.CurrentEntry()
		if entry == nil || !entry.IsDir {
			return state, nil
		}
		return state, r.changeDirectory(state, entry.FullPath)

	case ChangeDirAction:
		if a.Path == "" || a.Path == state.CurrentPath {
			return state, nil
		}
		return state, r.changeDirectory(state, filepath.Clean(a.Path))

	// ===== COMMAND LINE =====

	case CommandStartAction:
		state.CommandActive = true
		state.CommandBuffer = a.Seed
		state.UpdateScroll()
		return state, nil

	case CommandCharAction:
		if !state.CommandActive || !unicode.IsPrint(a.Char) {
			return state, nil
		}
		state.CommandBuffer += string(a.Char)
		r.applyLiveFilter(state)
		return state, nil

	case CommandBackspaceAction:
		if !state.CommandActive || state.CommandBuffer == "" {
			return state, nil
		}
		runes := []rune(state.CommandBuffer)
		state.CommandBuffer = string(runes[:len(runes)-1])
		r.applyLiveFilter(state)
		return state, nil

	case CommandCompleteAction:
		if !state.CommandActive || cmdline.Classify(state.CommandBuffer) != cmdline.KindPath {
			return state, nil
		}
		if state.CommandBuffer == "cd" {
			state.CommandBuffer = "cd "
			return state, nil
		}
		fragment := state.CommandBuffer[3:]
		completion := cmdline.Complete(fragment, state.CurrentPath)
		state.CommandBuffer = "cd " + fragment + completion.Suffix
		return state, nil

	case CommandCancelAction:
		state.CommandActive = false
		state.CommandBuffer = ""
		state.UpdateScroll()
		return state, nil

	case FilterCommitAction:
		re, err := searchpkg.Compile(a.Pattern)
		if err != nil {
			// The buffer stays editable so a typo can be fixed in place.
			state.SetStatus(fmt.Sprintf("Invalid pattern: %s", a.Pattern))
			return state, nil
		}

		state.CommandActive = false
		state.CommandBuffer = ""

		// Matches are built over a freshly listed directory so the session
		// indices cannot be stale.
		if err := LoadDirectory(state); err != nil {
			state.UpdateScroll()
			return state, err
		}

		matches := searchpkg.MatchIndices(re, state.EntryNames())
		if len(matches) == 0 {
			state.SetStatus(fmt.Sprintf("No matches for /%s", a.Pattern))
			state.UpdateScroll()
			return state, nil
		}

		state.Search = &searchpkg.Session{Pattern: re, Matches: matches}
		state.SelectedIndex = state.Search.Current()
		state.UpdateScroll()
		BuildPreview(state)
		return state, nil

	// ===== SEARCH SESSION =====

	case SearchNextAction:
		if state.Search != nil {
			state.SelectedIndex = state.Search.Next()
			state.UpdateScroll()
			BuildPreview(state)
		}
		return state, nil

	case SearchPrevAction:
		if state.Search != nil {
			state.SelectedIndex = state.Search.Prev()
			state.UpdateScroll()
			BuildPreview(state)
		}
		return state, nil

	// ===== VIEW =====

	case TogglePreviewAction:
		state.PreviewEnabled = !state.PreviewEnabled
		BuildPreview(state)
		return state, nil

	case ToggleHiddenAction:
		state.ShowHidden = !state.ShowHidden
		err := reloadKeepingSelection(state)
		BuildPreview(state)
		return state, err

	case RefreshAction:
		err := reloadKeepingSelection(state)
		BuildPreview(state)
		return state, err

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.UpdateScroll()
		return state, nil

	case ErrorDismissAction:
		state.ModalError = ""
		return state, nil

	// ===== PROMPT =====

	case PromptStartAction:
		return state, r.startPrompt(state, a.Kind)

	case PromptCharAction:
		if state.Prompt != nil && unicode.IsPrint(a.Char) {
			state.Prompt.Buffer += string(a.Char)
		}
		return state, nil

	case PromptBackspaceAction:
		if state.Prompt != nil && state.Prompt.Buffer != "" {
			runes := []rune(state.Prompt.Buffer)
			state.Prompt.Buffer = string(runes[:len(runes)-1])
		}
		return state, nil

	case PromptCancelAction:
		state.Prompt = nil
		return state, nil

	// ===== PAGER =====

	case PagerScrollAction:
		if state.Pager != nil {
			state.Pager.Offset = ClampOffset(state.Pager.Offset+a.Delta, len(state.Pager.Lines), state.PagerRows())
		}
		return state, nil

	case PagerHomeAction:
		if state.Pager != nil {
			state.Pager.Offset = 0
		}
		return state, nil

	case PagerEndAction:
		if state.Pager != nil {
			state.Pager.Offset = ClampOffset(len(state.Pager.Lines), len(state.Pager.Lines), state.PagerRows())
		}
		return state, nil
	}

	return state, nil
}

// changeDirectory moves navigation to path: validated, selection reset to
// the top, search session dropped (by LoadDirectory).
func (r *StateReducer) changeDirectory(state *AppState, path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("cannot enter '%s': does not exist or is not a directory", path)
	}

	state.SelectedIndex = 0
	if err := LoadDirectory(state, path); err != nil {
		return err
	}
	state.UpdateScroll()
	BuildPreview(state)
	return nil
}

// applyLiveFilter moves the selection to the first match while a filter
// buffer is being edited. It scans the current entry list as-is; re-listing
// happens only on commit. No session is created and no pager can open here.
func (r *StateReducer) applyLiveFilter(state *AppState) {
	if !cmdline.IsLiveFilter(state.CommandBuffer) {
		return
	}
	re, err := searchpkg.Compile(cmdline.FilterPattern(state.CommandBuffer))
	if err != nil {
		return // still typing; commit reports bad patterns
	}
	matches := searchpkg.MatchIndices(re, state.EntryNames())
	if len(matches) > 0 {
		state.SelectedIndex = matches[0]
		state.UpdateScroll()
		BuildPreview(state)
	}
}

func (r *StateReducer) startPrompt(state *AppState, kind PromptKind) error {
	entry := state.CurrentEntry()

	switch kind {
	case PromptCreate:
		state.Prompt = &PromptState{
			Kind:  PromptCreate,
			Label: "Create (name with extension = file): ",
		}
	case PromptRename:
		if entry == nil || entry.Name == ".." {
			return nil
		}
		state.Prompt = &PromptState{
			Kind:       PromptRename,
			Label:      fmt.Sprintf("Rename '%s' to: ", entry.Name),
			TargetName: entry.Name,
			TargetPath: entry.FullPath,
		}
	case PromptDelete:
		if entry == nil || entry.Name == ".." {
			return nil
		}
		state.Prompt = &PromptState{
			Kind:       PromptDelete,
			Label:      fmt.Sprintf("Delete '%s'? [y/N]: ", entry.Name),
			TargetName: entry.Name,
			TargetPath: entry.FullPath,
		}
	}
	return nil
}

// ResolveCommandPath expands a cd target the way the command line promises:
// ~ expansion, absolute paths as-is, everything else relative to base.
func ResolveCommandPath(target, base string) (string, error) {
	if target == "" || target == "~" {
		home, err := userHomeDirFn()
		if err != nil {
			return "", fmt.Errorf("cannot resolve home directory: %w", err)
		}
		return home, nil
	}

	if len(target) >= 2 && target[:2] == "~/" {
		home, err := userHomeDirFn()
		if err != nil {
			return "", fmt.Errorf("cannot resolve home directory: %w", err)
		}
		target = filepath.Join(home, target[2:])
	}

	if filepath.IsAbs(target) {
		return filepath.Clean(target), nil
	}
	return filepath.Clean(filepath.Join(base, target)), nil
}
