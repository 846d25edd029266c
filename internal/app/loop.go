package app

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/g0at1/fex/internal/log"
	statepkg "github.com/g0at1/fex/internal/state"
)

// Run drives the application until quit. The loop renders the current state,
// then blocks on the next terminal event, queued action, or status-expiry
// tick; every wake-up funnels back here so the state is only ever touched
// from this goroutine.
func (app *Application) Run() error {
	eventCh := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	for !app.shouldQuit {
		app.renderer.Render(app.state)

		var expiry <-chan time.Time
		if app.state.StatusActive(time.Now()) {
			expiry = time.After(time.Until(app.state.StatusExpiry))
		}

		select {
		case ev, ok := <-eventCh:
			if !ok {
				return nil
			}
			app.handleEvent(ev)
			app.drainActions()
		case action := <-app.actionCh:
			app.handleAction(action)
			app.drainActions()
		case <-expiry:
			// Wake up so the stale status line disappears.
		}
	}
	return nil
}

func (app *Application) handleEvent(ev tcell.Event) {
	if !app.input.ProcessEvent(ev) {
		app.shouldQuit = true
	}
}

// drainActions processes whatever the input handler queued without blocking,
// so one key press never leaves half its actions for the next render.
func (app *Application) drainActions() {
	for {
		select {
		case action := <-app.actionCh:
			app.handleAction(action)
		default:
			return
		}
	}
}

// handleAction dispatches one action: side-effectful ones are handled here,
// everything else goes through the reducer. Reducer errors become the modal
// error box.
func (app *Application) handleAction(action statepkg.Action) {
	prevPath := app.state.CurrentPath

	switch a := action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true

	case statepkg.EnterAction:
		app.handleEnter()
	case statepkg.OpenEditorAction:
		app.handleOpenEditor()
	case statepkg.OpenExternalAction:
		app.handleOpenExternal()
	case statepkg.YankPathAction:
		app.handleYankPath()

	case statepkg.CopyEntryAction:
		app.handleCopy()
	case statepkg.CutEntryAction:
		app.handleCut()
	case statepkg.PasteAction:
		app.handlePaste()

	case statepkg.PromptStartAction:
		app.handlePromptStart(a.Kind)
	case statepkg.PromptCommitAction:
		app.handlePromptCommit()

	case statepkg.CommandCommitAction:
		app.handleCommandCommit()

	case statepkg.PagerCloseAction:
		app.handlePagerClose()

	default:
		if _, err := app.reducer.Reduce(app.state, action); err != nil {
			log.Warnf("action failed: %v", err)
			app.state.ModalError = err.Error()
		}
	}

	if app.state.CurrentPath != prevPath {
		app.directoryChanged()
	}
}

// directoryChanged updates everything pinned to the navigation directory.
func (app *Application) directoryChanged() {
	app.state.Branch = app.branches.Branch(app.state.CurrentPath)
	if app.watcher != nil {
		app.watcher.SetDir(app.state.CurrentPath)
	}
}

// reduce runs a pure action through the reducer, routing errors to the modal
// error box.
func (app *Application) reduce(action statepkg.Action) {
	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		log.Warnf("action failed: %v", err)
		app.state.ModalError = err.Error()
	}
}
