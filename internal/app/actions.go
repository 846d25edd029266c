package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/skratchdot/open-golang/open"

	"github.com/g0at1/fex/internal/cmdline"
	"github.com/g0at1/fex/internal/fileops"
	"github.com/g0at1/fex/internal/log"
	statepkg "github.com/g0at1/fex/internal/state"
)

// handleEnter opens the selection: directories are entered, files open in
// the editor, and in pick mode a file ends the session with its path.
func (app *Application) handleEnter() {
	entry := app.state.CurrentEntry()
	if entry == nil {
		return
	}
	if entry.IsDir {
		app.reduce(statepkg.EnterDirectoryAction{})
		return
	}
	if app.pickMode {
		app.pickedPath = entry.FullPath
		app.shouldQuit = true
		return
	}
	app.openFileInEditor(entry.FullPath)
}

func (app *Application) handleOpenEditor() {
	entry := app.state.CurrentEntry()
	if entry == nil || entry.IsDir {
		return
	}
	app.openFileInEditor(entry.FullPath)
}

func (app *Application) handleOpenExternal() {
	entry := app.state.CurrentEntry()
	if entry == nil || entry.Name == ".." {
		return
	}
	if err := open.Start(entry.FullPath); err != nil {
		app.state.ModalError = fmt.Sprintf("cannot open '%s': %v", entry.Name, err)
		return
	}
	app.state.SetStatus(fmt.Sprintf("Opened %s", entry.Name))
}

func (app *Application) handleYankPath() {
	entry := app.state.CurrentEntry()
	if entry == nil || entry.Name == ".." {
		return
	}
	if err := clipboard.WriteAll(entry.FullPath); err != nil {
		app.state.SetStatus(fmt.Sprintf("Cannot yank path: %v", err))
		return
	}
	app.state.SetStatus(fmt.Sprintf("Yanked %s", entry.FullPath))
}

// ===== CLIPBOARD FILE OPERATIONS =====

func (app *Application) handleCopy() {
	entry := app.state.CurrentEntry()
	if entry == nil || entry.Name == ".." {
		return
	}
	app.fileOps.Copy(entry.FullPath)
	app.state.ClipboardHint = fmt.Sprintf("copy: %s", entry.Name)
	app.state.SetStatus(fmt.Sprintf("Copied %s", entry.Name))
}

func (app *Application) handleCut() {
	entry := app.state.CurrentEntry()
	if entry == nil || entry.Name == ".." {
		return
	}
	app.fileOps.Cut(entry.FullPath)
	app.state.ClipboardHint = fmt.Sprintf("cut: %s", entry.Name)
	app.state.SetStatus(fmt.Sprintf("Cut %s", entry.Name))
}

func (app *Application) handlePaste() {
	name, err := app.fileOps.Paste(app.state.CurrentPath)
	if err != nil {
		if err == fileops.ErrClipboardEmpty {
			app.state.SetStatus("Clipboard empty")
		} else {
			app.state.ModalError = err.Error()
		}
		return
	}

	if _, _, pending := app.fileOps.Pending(); !pending {
		app.state.ClipboardHint = ""
	}
	app.reloadSelecting(name)
	app.state.SetStatus(fmt.Sprintf("Pasted %s", name))
}

// ===== PROMPTS =====

// handlePromptStart forwards to the reducer, except deleting with
// confirmation disabled, which skips the prompt entirely.
func (app *Application) handlePromptStart(kind statepkg.PromptKind) {
	if kind == statepkg.PromptDelete && !app.cfg.ConfirmDelete {
		entry := app.state.CurrentEntry()
		if entry == nil || entry.Name == ".." {
			return
		}
		app.deleteEntry(entry.Name, entry.FullPath)
		return
	}
	app.reduce(statepkg.PromptStartAction{Kind: kind})
}

func (app *Application) handlePromptCommit() {
	prompt := app.state.Prompt
	if prompt == nil {
		return
	}
	app.state.Prompt = nil

	switch prompt.Kind {
	case statepkg.PromptCreate:
		name := strings.TrimSpace(prompt.Buffer)
		if name == "" {
			return
		}
		if err := app.fileOps.Create(app.state.CurrentPath, name); err != nil {
			app.state.ModalError = err.Error()
			return
		}
		app.reloadSelecting(name)
		app.state.SetStatus(fmt.Sprintf("Created %s", name))

	case statepkg.PromptRename:
		newName := strings.TrimSpace(prompt.Buffer)
		if newName == "" || newName == prompt.TargetName {
			return
		}
		if err := app.fileOps.Rename(app.state.CurrentPath, prompt.TargetName, newName); err != nil {
			app.state.ModalError = err.Error()
			return
		}
		app.reloadSelecting(newName)
		app.state.SetStatus(fmt.Sprintf("Renamed to %s", newName))

	case statepkg.PromptDelete:
		answer := strings.ToLower(strings.TrimSpace(prompt.Buffer))
		if !strings.HasPrefix(answer, "y") {
			app.state.SetStatus("Not deleted")
			return
		}
		app.deleteEntry(prompt.TargetName, prompt.TargetPath)
	}
}

func (app *Application) deleteEntry(name, path string) {
	if err := app.fileOps.Delete(path); err != nil {
		app.state.ModalError = err.Error()
		return
	}
	if _, _, pending := app.fileOps.Pending(); !pending {
		app.state.ClipboardHint = ""
	}
	app.reduce(statepkg.RefreshAction{})
	app.state.SetStatus(fmt.Sprintf("Deleted %s", name))
}

// ===== COMMAND LINE =====

func (app *Application) handleCommandCommit() {
	buffer := app.state.CommandBuffer

	if cmdline.Classify(buffer) == cmdline.KindFilter {
		pattern := cmdline.FilterPattern(buffer)
		if pattern == "" {
			app.reduce(statepkg.CommandCancelAction{})
			return
		}
		app.reduce(statepkg.FilterCommitAction{Pattern: pattern})
		return
	}

	app.reduce(statepkg.CommandCancelAction{})
	app.executeCommandLine(buffer)
}

// executeCommandLine runs a committed command buffer: sub-commands split on
// ";" execute left to right, cd sub-commands move a pending working
// directory, and every non-blank output is paged in order.
func (app *Application) executeCommandLine(buffer string) {
	parts := cmdline.SplitCommands(buffer)
	if len(parts) == 0 {
		return
	}

	current := app.state.CurrentPath
	for _, part := range parts {
		if target, ok := cmdline.ParseChangeDir(part); ok {
			resolved, err := statepkg.ResolveCommandPath(target, current)
			if err != nil {
				app.state.ModalError = err.Error()
				continue
			}
			info, err := os.Stat(resolved)
			if err != nil || !info.IsDir() {
				app.state.ModalError = fmt.Sprintf("cannot enter '%s': does not exist or is not a directory", resolved)
				continue
			}
			current = resolved
			continue
		}

		log.Debugf("exec: %s (in %s)", part, current)
		app.branches.NoteCommand(part)
		result := app.runner.Run(part, current)

		output := result.Stdout
		if result.Stderr != "" {
			if output != "" && !strings.HasSuffix(output, "\n") {
				output += "\n"
			}
			output += result.Stderr
		}
		if result.ExitCode != 0 {
			output += fmt.Sprintf("\n\n(Return code: %d)", result.ExitCode)
		}
		if strings.TrimSpace(output) != "" {
			app.enqueuePager(part, output)
		}
	}

	if current != app.state.CurrentPath {
		app.reduce(statepkg.ChangeDirAction{Path: current})
	} else {
		// The commands may have changed the directory contents.
		app.reduce(statepkg.RefreshAction{})
	}
	app.state.Branch = app.branches.Branch(app.state.CurrentPath)
}

// enqueuePager shows output in the pager, or queues it behind the one
// already open so multi-command buffers page their outputs in order.
func (app *Application) enqueuePager(title, output string) {
	pager := statepkg.PagerState{
		Title: title,
		Lines: strings.Split(strings.TrimRight(output, "\n"), "\n"),
	}
	if app.state.Pager == nil {
		app.state.Pager = &pager
		return
	}
	app.pagerQueue = append(app.pagerQueue, pager)
}

func (app *Application) handlePagerClose() {
	if len(app.pagerQueue) > 0 {
		next := app.pagerQueue[0]
		app.pagerQueue = app.pagerQueue[1:]
		app.state.Pager = &next
		return
	}
	app.state.Pager = nil
}

// reloadSelecting re-reads the listing and puts the selection on name.
func (app *Application) reloadSelecting(name string) {
	app.reduce(statepkg.RefreshAction{})
	for i, e := range app.state.Entries {
		if e.Name == name {
			app.state.SelectedIndex = i
			break
		}
	}
	app.state.UpdateScroll()
	statepkg.BuildPreview(app.state)
}
