package app

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"

	"github.com/g0at1/fex/internal/log"
	statepkg "github.com/g0at1/fex/internal/state"
)

// detectEditorCommand picks the editor to open files with: the configured
// command first, then $VISUAL and $EDITOR, then platform defaults.
func detectEditorCommand(configured string) ([]string, bool) {
	return detectEditorCommandInternal(configured, runtime.GOOS, os.Getenv, exec.LookPath)
}

func detectEditorCommandInternal(configured, goos string, getenv func(string) string, lookPath func(string) (string, error)) ([]string, bool) {
	candidates := []string{configured, getenv("VISUAL"), getenv("EDITOR")}

	for _, candidate := range candidates {
		args := parseEditorCommand(candidate)
		if len(args) == 0 {
			continue
		}
		if resolved, ok := resolveEditorExecutable(args[0], lookPath); ok {
			args[0] = resolved
			return args, true
		}
	}

	var defaults [][]string
	if strings.EqualFold(goos, "windows") {
		defaults = [][]string{
			{"code", "--wait"},
			{"notepad.exe"},
		}
	} else {
		defaults = [][]string{
			{"vim"},
			{"nano"},
		}
	}

	for _, def := range defaults {
		if resolved, ok := resolveEditorExecutable(def[0], lookPath); ok {
			args := append([]string{resolved}, def[1:]...)
			return args, true
		}
	}

	return nil, false
}

// parseEditorCommand splits an editor command line into argv, honoring single
// and double quotes so values like `code --wait` or quoted paths survive.
func parseEditorCommand(cmd string) []string {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	var args []string
	var current strings.Builder
	inSingle := false
	inDouble := false

	for _, r := range cmd {
		switch r {
		case '\'':
			if inDouble {
				current.WriteRune(r)
			} else {
				inSingle = !inSingle
			}
			continue
		case '"':
			if inSingle {
				current.WriteRune(r)
			} else {
				inDouble = !inDouble
			}
			continue
		default:
			if !inSingle && !inDouble && unicode.IsSpace(r) {
				if current.Len() > 0 {
					args = append(args, current.String())
					current.Reset()
				}
				continue
			}
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}

	if len(args) > 0 {
		args[0] = expandUserPath(args[0])
	}

	return args
}

func expandUserPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	if len(path) == 1 {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}

	sep := path[1]
	if sep != '/' && sep != '\\' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

func resolveEditorExecutable(cmd string, lookPath func(string) (string, error)) (string, bool) {
	if cmd == "" {
		return "", false
	}
	if expanded := expandUserPath(cmd); expanded != cmd {
		cmd = expanded
	}
	path, err := lookPath(cmd)
	if err != nil {
		return "", false
	}
	return path, true
}

// openFileInEditor suspends the screen, runs the editor against the
// controlling terminal, and resumes. Failures surface in the modal error box
// rather than as a return value; the listing is refreshed afterwards since
// the editor may have written the file.
func (app *Application) openFileInEditor(filePath string) {
	if len(app.editorCmd) == 0 {
		app.state.ModalError = "no editor configured; set editor in the config file or $EDITOR"
		return
	}

	args := make([]string, len(app.editorCmd)+1)
	copy(args, app.editorCmd)
	args[len(app.editorCmd)] = filePath

	if err := app.runSuspended(args); err != nil {
		app.state.ModalError = fmt.Sprintf("editor failed: %v", err)
		return
	}
	app.reduce(statepkg.RefreshAction{})
}

func (app *Application) runSuspended(args []string) error {
	useTTY := runtime.GOOS != "windows"
	var tty *os.File
	if useTTY {
		f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
		if err != nil {
			log.Debugf("no /dev/tty, falling back to std streams: %v", err)
			useTTY = false
		} else {
			tty = f
			defer func() {
				_ = tty.Close()
			}()
		}
	}

	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}

	cmd := exec.Command(args[0], args[1:]...)
	if useTTY {
		cmd.Stdin = tty
		cmd.Stdout = tty
		cmd.Stderr = tty
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	runErr := cmd.Run()

	if err := app.screen.Resume(); err != nil {
		return fmt.Errorf("failed to resume screen: %w", err)
	}
	app.screen.Sync()
	return runErr
}
