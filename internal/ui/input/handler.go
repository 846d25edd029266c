package input

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/g0at1/fex/internal/state"
)

// InputHandler converts tcell events to Actions, routing them by the mode
// the state is in. Modal sub-states (pager, error box, prompt, command
// line) swallow everything else, which is what makes them modal.
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState
}

func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{actionChan: actionChan}
}

// SetState sets the state reference for mode checking.
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false when
// the application should quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		ih.actionChan <- statepkg.QuitAction{}
		return false
	}

	if ih.state != nil {
		switch {
		case ih.state.Pager != nil:
			ih.processPagerKey(ev)
			return true
		case ih.state.ModalError != "":
			// Any key dismisses the error box.
			ih.actionChan <- statepkg.ErrorDismissAction{}
			return true
		case ih.state.Prompt != nil:
			ih.processPromptKey(ev)
			return true
		case ih.state.CommandActive:
			ih.processCommandKey(ev)
			return true
		}
	}

	return ih.processNormalKey(ev)
}

func (ih *InputHandler) processPagerKey(ev *tcell.EventKey) {
	page := 1
	if ih.state != nil {
		page = ih.state.PagerRows()
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.PagerCloseAction{}
	case tcell.KeyUp:
		ih.actionChan <- statepkg.PagerScrollAction{Delta: -1}
	case tcell.KeyDown:
		ih.actionChan <- statepkg.PagerScrollAction{Delta: 1}
	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.PagerScrollAction{Delta: -page}
	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.PagerScrollAction{Delta: page}
	case tcell.KeyHome:
		ih.actionChan <- statepkg.PagerHomeAction{}
	case tcell.KeyEnd:
		ih.actionChan <- statepkg.PagerEndAction{}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			ih.actionChan <- statepkg.PagerCloseAction{}
		case 'k':
			ih.actionChan <- statepkg.PagerScrollAction{Delta: -1}
		case 'j':
			ih.actionChan <- statepkg.PagerScrollAction{Delta: 1}
		case 'g':
			ih.actionChan <- statepkg.PagerHomeAction{}
		case 'G':
			ih.actionChan <- statepkg.PagerEndAction{}
		}
	}
}

func (ih *InputHandler) processPromptKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.PromptCancelAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.PromptCommitAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.PromptBackspaceAction{}
	case tcell.KeyRune:
		ih.actionChan <- statepkg.PromptCharAction{Char: ev.Rune()}
	}
}

func (ih *InputHandler) processCommandKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.CommandCancelAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.CommandCommitAction{}
	case tcell.KeyTab:
		ih.actionChan <- statepkg.CommandCompleteAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.CommandBackspaceAction{}
	case tcell.KeyRune:
		ih.actionChan <- statepkg.CommandCharAction{Char: ev.Rune()}
	}
}

func (ih *InputHandler) processNormalKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
		return true
	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
		return true
	case tcell.KeyLeft:
		ih.actionChan <- statepkg.GoParentAction{}
		return true
	case tcell.KeyRight:
		ih.actionChan <- statepkg.EnterDirectoryAction{}
		return true
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.EnterAction{}
		return true
	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.ScrollPageUpAction{}
		return true
	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.ScrollPageDownAction{}
		return true
	case tcell.KeyHome:
		ih.actionChan <- statepkg.ScrollToStartAction{}
		return true
	case tcell.KeyEnd:
		ih.actionChan <- statepkg.ScrollToEndAction{}
		return true
	case tcell.KeyRune:
		return ih.processNormalRune(ev.Rune())
	}
	return true
}

func (ih *InputHandler) processNormalRune(r rune) bool {
	switch r {
	case 'q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case 'k':
		ih.actionChan <- statepkg.NavigateUpAction{}
	case 'j':
		ih.actionChan <- statepkg.NavigateDownAction{}
	case 'h':
		ih.actionChan <- statepkg.GoParentAction{}
	case 'l':
		ih.actionChan <- statepkg.EnterDirectoryAction{}
	case ':', 'c':
		ih.actionChan <- statepkg.CommandStartAction{}
	case '/':
		ih.actionChan <- statepkg.CommandStartAction{Seed: "/"}
	case 'n':
		ih.actionChan <- statepkg.SearchNextAction{}
	case 'N':
		ih.actionChan <- statepkg.SearchPrevAction{}
	case 'w':
		ih.actionChan <- statepkg.TogglePreviewAction{}
	case '.':
		ih.actionChan <- statepkg.ToggleHiddenAction{}
	case 'y':
		ih.actionChan <- statepkg.CopyEntryAction{}
	case 'd':
		ih.actionChan <- statepkg.CutEntryAction{}
	case 'p':
		ih.actionChan <- statepkg.PasteAction{}
	case 'a':
		ih.actionChan <- statepkg.PromptStartAction{Kind: statepkg.PromptCreate}
	case 'r':
		ih.actionChan <- statepkg.PromptStartAction{Kind: statepkg.PromptRename}
	case 'D':
		ih.actionChan <- statepkg.PromptStartAction{Kind: statepkg.PromptDelete}
	case 'Y':
		ih.actionChan <- statepkg.YankPathAction{}
	case 'o':
		ih.actionChan <- statepkg.OpenExternalAction{}
	case 'e':
		ih.actionChan <- statepkg.OpenEditorAction{}
	case 'R':
		ih.actionChan <- statepkg.RefreshAction{}
	}
	return true
}
