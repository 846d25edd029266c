// Package fileops owns the single-slot clipboard and every filesystem
// mutation the browser can perform. All operations report failures as plain
// errors; callers surface them and re-read the listing, they never crash.
package fileops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/g0at1/fex/internal/fs"
)

// ErrClipboardEmpty is returned by Paste when nothing was copied or cut.
var ErrClipboardEmpty = errors.New("clipboard empty")

// Clipboard is the at-most-one pending source for a paste.
type Clipboard struct {
	SourcePath string
	IsCut      bool
}

// Orchestrator performs clipboard-style file operations. It is only ever
// invoked from the single-threaded main loop, which is what keeps the
// clipboard slot race-free.
type Orchestrator struct {
	clip Clipboard
}

func NewOrchestrator() *Orchestrator {
	return &Orchestrator{}
}

// Copy records path as the pending paste source, clearing any cut flag.
func (o *Orchestrator) Copy(path string) {
	o.clip = Clipboard{SourcePath: path}
}

// Cut records path as the pending paste source to be moved on paste.
func (o *Orchestrator) Cut(path string) {
	o.clip = Clipboard{SourcePath: path, IsCut: true}
}

// Pending reports the current clipboard slot.
func (o *Orchestrator) Pending() (path string, isCut bool, ok bool) {
	return o.clip.SourcePath, o.clip.IsCut, o.clip.SourcePath != ""
}

// Paste materializes the pending source inside destDir and returns the name
// it landed under. A cut source moves under its original base name and
// clears the slot; a copied source duplicates under a derived copy name and
// stays in the slot for repeated pasting.
func (o *Orchestrator) Paste(destDir string) (string, error) {
	if o.clip.SourcePath == "" {
		return "", ErrClipboardEmpty
	}

	src := o.clip.SourcePath
	if o.clip.IsCut {
		name := filepath.Base(src)
		if err := fs.Move(src, filepath.Join(destDir, name)); err != nil {
			return "", err
		}
		o.clip = Clipboard{}
		return name, nil
	}

	name := CopyName(filepath.Base(src), func(candidate string) bool {
		_, err := os.Lstat(filepath.Join(destDir, candidate))
		return err == nil
	})
	if err := fs.CopyRecursive(src, filepath.Join(destDir, name)); err != nil {
		return "", err
	}
	return name, nil
}

// CopyName derives a destination name for a copied entry: the base name with
// a copy marker before the extension, then numbered alternatives until one
// does not collide.
func CopyName(base string, exists func(string) bool) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	candidate := stem + "-copy" + ext
	for n := 2; exists(candidate); n++ {
		candidate = fmt.Sprintf("%s-copy-%d%s", stem, n, ext)
	}
	return candidate
}

// Create makes a new entry named name inside dir: a name with an extension
// becomes an empty file, an extension-less name becomes a directory.
func (o *Orchestrator) Create(dir, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("empty name")
	}
	path := filepath.Join(dir, name)
	if filepath.Ext(name) != "" {
		return fs.CreateFile(path)
	}
	return fs.CreateDirectory(path)
}

// Rename renames an entry in place.
func (o *Orchestrator) Rename(dir, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return errors.New("empty name")
	}
	return fs.Rename(filepath.Join(dir, oldName), filepath.Join(dir, newName))
}

// Delete removes path, recursively for directories. Confirmation is the
// caller's responsibility.
func (o *Orchestrator) Delete(path string) error {
	if o.clip.SourcePath == path {
		o.clip = Clipboard{}
	}
	return fs.RemoveRecursive(path)
}
