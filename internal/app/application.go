package app

import (
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/g0at1/fex/internal/config"
	"github.com/g0at1/fex/internal/fileops"
	"github.com/g0at1/fex/internal/gitinfo"
	"github.com/g0at1/fex/internal/log"
	"github.com/g0at1/fex/internal/shell"
	statepkg "github.com/g0at1/fex/internal/state"
	inputui "github.com/g0at1/fex/internal/ui/input"
	renderui "github.com/g0at1/fex/internal/ui/render"
	"github.com/g0at1/fex/internal/watch"
)

// Options configures a new Application.
type Options struct {
	StartPath string
	PickMode  bool
	Config    config.Config
}

// Application represents the running app.
type Application struct {
	screen   tcell.Screen
	state    *statepkg.AppState
	reducer  *statepkg.StateReducer
	renderer *renderui.Renderer
	input    *inputui.InputHandler
	actionCh chan statepkg.Action

	fileOps  *fileops.Orchestrator
	runner   shell.Runner
	branches *gitinfo.Resolver
	watcher  *watch.DirWatcher

	cfg        config.Config
	editorCmd  []string
	pickMode   bool
	pickedPath string
	pagerQueue []statepkg.PagerState
	shouldQuit bool
}

func NewApplication(opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	startPath := opts.StartPath
	if startPath == "" {
		startPath, err = os.Getwd()
		if err != nil {
			screen.Fini()
			return nil, err
		}
	}

	state := &statepkg.AppState{
		CurrentPath:    startPath,
		ShowHidden:     opts.Config.ShowHidden,
		PreviewEnabled: opts.Config.Preview,
	}
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 16)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	editorCmd, _ := detectEditorCommand(opts.Config.Editor)

	app := &Application{
		screen:    screen,
		state:     state,
		reducer:   statepkg.NewStateReducer(),
		renderer:  renderui.NewRenderer(screen),
		input:     inputHandler,
		actionCh:  actionCh,
		fileOps:   fileops.NewOrchestrator(),
		runner:    shell.NewExecRunner(),
		branches:  gitinfo.NewResolver(),
		cfg:       opts.Config,
		editorCmd: editorCmd,
		pickMode:  opts.PickMode,
	}

	if err := statepkg.LoadDirectory(state); err != nil {
		screen.Fini()
		return nil, err
	}
	statepkg.BuildPreview(state)
	state.Branch = app.branches.Branch(state.CurrentPath)

	watcher, err := watch.NewDirWatcher(func() {
		actionCh <- statepkg.RefreshAction{}
	})
	if err != nil {
		log.Warnf("filesystem watcher unavailable: %v", err)
	} else {
		app.watcher = watcher
		watcher.SetDir(state.CurrentPath)
	}

	return app, nil
}

// Close cleans up resources.
func (app *Application) Close() error {
	if app.watcher != nil {
		_ = app.watcher.Close()
	}
	app.screen.Fini()
	return nil
}

// PickedPath returns the path chosen in pick mode, if any.
func (app *Application) PickedPath() string {
	return app.pickedPath
}
