package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestPasteAfterCopyKeepsClipboard(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")
	writeFile(t, src, "hello")

	o := NewOrchestrator()
	o.Copy(src)

	name, err := o.Paste(dir)
	require.NoError(t, err)
	assert.Equal(t, "notes-copy.txt", name)

	name, err = o.Paste(dir)
	require.NoError(t, err)
	assert.Equal(t, "notes-copy-2.txt", name)

	data, err := os.ReadFile(filepath.Join(dir, "notes-copy-2.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, _, pending := o.Pending()
	assert.True(t, pending, "copy clipboard survives pasting")
}

func TestPasteAfterCutMovesAndClears(t *testing.T) {
	srcDir := t.TempDir()
	destDir := t.TempDir()
	src := filepath.Join(srcDir, "notes.txt")
	writeFile(t, src, "hello")

	o := NewOrchestrator()
	o.Cut(src)

	name, err := o.Paste(destDir)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", name)

	_, statErr := os.Stat(src)
	assert.True(t, os.IsNotExist(statErr), "cut source must be gone")

	_, err = o.Paste(destDir)
	assert.ErrorIs(t, err, ErrClipboardEmpty)
}

func TestPasteEmptyClipboard(t *testing.T) {
	o := NewOrchestrator()
	_, err := o.Paste(t.TempDir())
	assert.ErrorIs(t, err, ErrClipboardEmpty)
}

func TestPasteCopiesDirectoryRecursively(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "proj")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "sub"), 0o755))
	writeFile(t, filepath.Join(src, "sub", "a.txt"), "a")

	o := NewOrchestrator()
	o.Copy(src)

	name, err := o.Paste(dir)
	require.NoError(t, err)
	assert.Equal(t, "proj-copy", name)

	data, err := os.ReadFile(filepath.Join(dir, "proj-copy", "sub", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))
}

func TestCopyName(t *testing.T) {
	never := func(string) bool { return false }
	assert.Equal(t, "a-copy.txt", CopyName("a.txt", never))
	assert.Equal(t, "dir-copy", CopyName("dir", never))

	taken := map[string]bool{"a-copy.txt": true, "a-copy-2.txt": true}
	assert.Equal(t, "a-copy-3.txt", CopyName("a.txt", func(n string) bool { return taken[n] }))
}

func TestCreateFileVersusDirectory(t *testing.T) {
	dir := t.TempDir()
	o := NewOrchestrator()

	require.NoError(t, o.Create(dir, "readme.md"))
	info, err := os.Stat(filepath.Join(dir, "readme.md"))
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	require.NoError(t, o.Create(dir, "src"))
	info, err = os.Stat(filepath.Join(dir, "src"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.Error(t, o.Create(dir, "readme.md"), "existing file must not be clobbered")
	assert.Error(t, o.Create(dir, "   "))
}

func TestRenameRefusesCollision(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "b.txt"), "b")

	o := NewOrchestrator()
	assert.Error(t, o.Rename(dir, "a.txt", "b.txt"))

	require.NoError(t, o.Rename(dir, "a.txt", "c.txt"))
	_, err := os.Stat(filepath.Join(dir, "c.txt"))
	assert.NoError(t, err)
}

func TestDeleteClearsPendingSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	writeFile(t, src, "a")

	o := NewOrchestrator()
	o.Copy(src)
	require.NoError(t, o.Delete(src))

	_, err := o.Paste(dir)
	assert.ErrorIs(t, err, ErrClipboardEmpty)
}
