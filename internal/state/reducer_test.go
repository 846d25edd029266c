package state

import (
	"testing"
)

func testState(names ...string) *AppState {
	entries := make([]FileEntry, 0, len(names)+1)
	entries = append(entries, FileEntry{Name: "..", FullPath: "/test", IsDir: true})
	for _, n := range names {
		entries = append(entries, FileEntry{Name: n, FullPath: "/test/" + n})
	}
	return &AppState{
		CurrentPath:  "/test",
		Entries:      entries,
		ScreenWidth:  80,
		ScreenHeight: 24,
	}
}

// ===== NAVIGATION =====

func TestNavigateDown(t *testing.T) {
	state := testState("a.txt", "b.txt")
	reducer := NewStateReducer()

	if _, err := reducer.Reduce(state, NavigateDownAction{}); err != nil {
		t.Fatalf("Failed to navigate down: %v", err)
	}
	if state.SelectedIndex != 1 {
		t.Errorf("Expected selected=1, got %d", state.SelectedIndex)
	}
}

func TestNavigateDownAtEnd(t *testing.T) {
	state := testState("a.txt")
	state.SelectedIndex = 1
	reducer := NewStateReducer()

	if _, err := reducer.Reduce(state, NavigateDownAction{}); err != nil {
		t.Fatalf("Failed to navigate down: %v", err)
	}
	if state.SelectedIndex != 1 {
		t.Errorf("Should stay at 1, got %d", state.SelectedIndex)
	}
}

func TestNavigateUpAtTop(t *testing.T) {
	state := testState("a.txt")
	reducer := NewStateReducer()

	if _, err := reducer.Reduce(state, NavigateUpAction{}); err != nil {
		t.Fatalf("Failed to navigate up: %v", err)
	}
	if state.SelectedIndex != 0 {
		t.Errorf("Should stay at 0, got %d", state.SelectedIndex)
	}
}

func TestScrollPageDownClamps(t *testing.T) {
	state := testState("a", "b", "c")
	reducer := NewStateReducer()

	if _, err := reducer.Reduce(state, ScrollPageDownAction{}); err != nil {
		t.Fatalf("Failed to page down: %v", err)
	}
	if state.SelectedIndex != 3 {
		t.Errorf("Expected selection on last entry, got %d", state.SelectedIndex)
	}
}

func TestScrollToEnd(t *testing.T) {
	state := testState("a", "b", "c")
	reducer := NewStateReducer()

	if _, err := reducer.Reduce(state, ScrollToEndAction{}); err != nil {
		t.Fatalf("Failed to scroll to end: %v", err)
	}
	if state.SelectedIndex != 3 {
		t.Errorf("Expected selected=3, got %d", state.SelectedIndex)
	}

	if _, err := reducer.Reduce(state, ScrollToStartAction{}); err != nil {
		t.Fatalf("Failed to scroll to start: %v", err)
	}
	if state.SelectedIndex != 0 {
		t.Errorf("Expected selected=0, got %d", state.SelectedIndex)
	}
}

// ===== COMMAND LINE =====

func TestCommandTyping(t *testing.T) {
	state := testState("a.txt")
	reducer := NewStateReducer()

	reducer.Reduce(state, CommandStartAction{})
	if !state.CommandActive {
		t.Fatal("Command mode should be active")
	}

	for _, r := range "ls -la" {
		reducer.Reduce(state, CommandCharAction{Char: r})
	}
	if state.CommandBuffer != "ls -la" {
		t.Errorf("Expected buffer 'ls -la', got %q", state.CommandBuffer)
	}

	reducer.Reduce(state, CommandBackspaceAction{})
	if state.CommandBuffer != "ls -l" {
		t.Errorf("Expected buffer 'ls -l', got %q", state.CommandBuffer)
	}

	reducer.Reduce(state, CommandCancelAction{})
	if state.CommandActive || state.CommandBuffer != "" {
		t.Error("Cancel should clear command mode and buffer")
	}
}

func TestCommandCharIgnoredOutsideCommandMode(t *testing.T) {
	state := testState("a.txt")
	reducer := NewStateReducer()

	reducer.Reduce(state, CommandCharAction{Char: 'x'})
	if state.CommandBuffer != "" {
		t.Errorf("Buffer should stay empty, got %q", state.CommandBuffer)
	}
}

func TestCommandCompleteAddsSpaceAfterBareCd(t *testing.T) {
	state := testState("a.txt")
	reducer := NewStateReducer()

	reducer.Reduce(state, CommandStartAction{Seed: "cd"})
	reducer.Reduce(state, CommandCompleteAction{})
	if state.CommandBuffer != "cd " {
		t.Errorf("Expected 'cd ', got %q", state.CommandBuffer)
	}
}

func TestCommandCompleteIgnoresShellBuffers(t *testing.T) {
	state := testState("a.txt")
	reducer := NewStateReducer()

	reducer.Reduce(state, CommandStartAction{Seed: "git sta"})
	reducer.Reduce(state, CommandCompleteAction{})
	if state.CommandBuffer != "git sta" {
		t.Errorf("Shell buffer should be untouched, got %q", state.CommandBuffer)
	}
}

// ===== LIVE FILTER =====

func TestLiveFilterMovesSelection(t *testing.T) {
	state := testState("apple", "banana", "avocado")
	reducer := NewStateReducer()

	reducer.Reduce(state, CommandStartAction{Seed: "/"})
	reducer.Reduce(state, CommandCharAction{Char: 'b'})
	reducer.Reduce(state, CommandCharAction{Char: 'a'})

	if state.Entries[state.SelectedIndex].Name != "banana" {
		t.Errorf("Expected selection on banana, got %q", state.Entries[state.SelectedIndex].Name)
	}
}

func TestLiveFilterSingleCharDoesNothing(t *testing.T) {
	state := testState("apple", "banana")
	state.SelectedIndex = 2
	reducer := NewStateReducer()

	reducer.Reduce(state, CommandStartAction{Seed: "/"})
	if state.SelectedIndex != 2 {
		t.Errorf("Bare sentinel should not move selection, got %d", state.SelectedIndex)
	}
}

func TestLiveFilterBadPatternKeepsSelection(t *testing.T) {
	state := testState("apple", "banana")
	reducer := NewStateReducer()

	reducer.Reduce(state, CommandStartAction{Seed: "/"})
	reducer.Reduce(state, CommandCharAction{Char: '['})
	reducer.Reduce(state, CommandCharAction{Char: 'a'})

	if state.SelectedIndex != 0 {
		t.Errorf("Broken pattern should be ignored while typing, got selection %d", state.SelectedIndex)
	}
}

// ===== SEARCH SESSION =====

func TestSearchNextWithoutSession(t *testing.T) {
	state := testState("apple")
	state.SelectedIndex = 1
	reducer := NewStateReducer()

	reducer.Reduce(state, SearchNextAction{})
	if state.SelectedIndex != 1 {
		t.Errorf("n without a session should be a no-op, got %d", state.SelectedIndex)
	}
}

// ===== VIEW =====

func TestResizeUpdatesDimensions(t *testing.T) {
	state := testState("a.txt")
	reducer := NewStateReducer()

	reducer.Reduce(state, ResizeAction{Width: 120, Height: 40})
	if state.ScreenWidth != 120 || state.ScreenHeight != 40 {
		t.Errorf("Expected 120x40, got %dx%d", state.ScreenWidth, state.ScreenHeight)
	}
}

func TestErrorDismiss(t *testing.T) {
	state := testState("a.txt")
	state.ModalError = "boom"
	reducer := NewStateReducer()

	reducer.Reduce(state, ErrorDismissAction{})
	if state.ModalError != "" {
		t.Errorf("Expected error cleared, got %q", state.ModalError)
	}
}

// ===== PROMPTS =====

func TestPromptStartRenameGuardsParent(t *testing.T) {
	state := testState("a.txt")
	reducer := NewStateReducer()

	reducer.Reduce(state, PromptStartAction{Kind: PromptRename})
	if state.Prompt != nil {
		t.Error("Renaming '..' must not open a prompt")
	}

	state.SelectedIndex = 1
	reducer.Reduce(state, PromptStartAction{Kind: PromptRename})
	if state.Prompt == nil {
		t.Fatal("Expected a rename prompt")
	}
	if state.Prompt.TargetName != "a.txt" {
		t.Errorf("Expected target a.txt, got %q", state.Prompt.TargetName)
	}
}

func TestPromptTypingAndCancel(t *testing.T) {
	state := testState("a.txt")
	reducer := NewStateReducer()

	reducer.Reduce(state, PromptStartAction{Kind: PromptCreate})
	if state.Prompt == nil {
		t.Fatal("Expected a create prompt")
	}

	for _, r := range "dir" {
		reducer.Reduce(state, PromptCharAction{Char: r})
	}
	if state.Prompt.Buffer != "dir" {
		t.Errorf("Expected buffer 'dir', got %q", state.Prompt.Buffer)
	}

	reducer.Reduce(state, PromptBackspaceAction{})
	if state.Prompt.Buffer != "di" {
		t.Errorf("Expected buffer 'di', got %q", state.Prompt.Buffer)
	}

	reducer.Reduce(state, PromptCancelAction{})
	if state.Prompt != nil {
		t.Error("Cancel should drop the prompt")
	}
}

// ===== PAGER =====

func TestPagerScrollClamps(t *testing.T) {
	state := testState()
	state.ScreenHeight = 14 // PagerRows() == 7
	state.Pager = &PagerState{
		Title: "git log",
		Lines: make([]string, 20),
	}
	reducer := NewStateReducer()

	reducer.Reduce(state, PagerScrollAction{Delta: 100})
	if state.Pager.Offset != 13 {
		t.Errorf("Expected offset clamped to 13, got %d", state.Pager.Offset)
	}

	reducer.Reduce(state, PagerScrollAction{Delta: -100})
	if state.Pager.Offset != 0 {
		t.Errorf("Expected offset clamped to 0, got %d", state.Pager.Offset)
	}

	reducer.Reduce(state, PagerEndAction{})
	if state.Pager.Offset != 13 {
		t.Errorf("Expected end offset 13, got %d", state.Pager.Offset)
	}

	reducer.Reduce(state, PagerHomeAction{})
	if state.Pager.Offset != 0 {
		t.Errorf("Expected home offset 0, got %d", state.Pager.Offset)
	}
}
