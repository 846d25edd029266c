package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Move relocates src to dest, falling back to copy+remove when a plain rename
// is refused (cross-device moves).
func Move(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	if err := CopyRecursive(src, dest); err != nil {
		return fmt.Errorf("cannot move %s: %w", src, err)
	}
	if err := os.RemoveAll(src); err != nil {
		return fmt.Errorf("cannot remove %s after move: %w", src, err)
	}
	return nil
}

// CopyRecursive duplicates src (file or directory tree) at dest. dest must
// not already exist.
func CopyRecursive(src, dest string) error {
	if _, err := os.Lstat(dest); err == nil {
		return fmt.Errorf("cannot copy to %s: destination already exists", dest)
	}

	info, err := os.Lstat(src)
	if err != nil {
		return fmt.Errorf("cannot copy %s: %w", src, err)
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return copySymlink(src, dest)
	case info.IsDir():
		return copyDir(src, dest, info)
	default:
		return copyFile(src, dest, info)
	}
}

func copyDir(src, dest string, info os.FileInfo) error {
	if err := os.MkdirAll(dest, info.Mode().Perm()); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dest, err)
	}
	children, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("cannot read directory %s: %w", src, err)
	}
	for _, child := range children {
		if err := CopyRecursive(filepath.Join(src, child.Name()), filepath.Join(dest, child.Name())); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dest string, info os.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", src, err)
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("cannot copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("cannot finish copy of %s: %w", src, err)
	}
	return nil
}

func copySymlink(src, dest string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return fmt.Errorf("cannot read symlink %s: %w", src, err)
	}
	if err := os.Symlink(target, dest); err != nil {
		return fmt.Errorf("cannot create symlink %s: %w", dest, err)
	}
	return nil
}

// RemoveRecursive deletes path; directories are removed with their contents.
func RemoveRecursive(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("cannot delete %s: %w", path, err)
	}
	return nil
}

// CreateFile creates an empty file at path, failing if it already exists.
func CreateFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("cannot create file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot create file %s: %w", path, err)
	}
	return nil
}

// CreateDirectory creates a single directory at path.
func CreateDirectory(path string) error {
	if err := os.Mkdir(path, 0o755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", path, err)
	}
	return nil
}

// Rename renames old to new within the same directory.
func Rename(oldPath, newPath string) error {
	if _, err := os.Lstat(newPath); err == nil {
		return fmt.Errorf("cannot rename to %s: name already exists", filepath.Base(newPath))
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("cannot rename %s: %w", filepath.Base(oldPath), err)
	}
	return nil
}
