//go:build !windows

package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCapturesStdout(t *testing.T) {
	r := NewExecRunner()

	res := r.Run("echo hello", t.TempDir())
	if res.ExitCode != 0 {
		t.Fatalf("Expected exit 0, got %d (stderr: %q)", res.ExitCode, res.Stderr)
	}
	if strings.TrimSpace(res.Stdout) != "hello" {
		t.Errorf("Expected 'hello', got %q", res.Stdout)
	}
}

func TestRunCapturesStderrAndExitCode(t *testing.T) {
	r := NewExecRunner()

	res := r.Run("echo oops >&2; exit 3", t.TempDir())
	if res.ExitCode != 3 {
		t.Errorf("Expected exit 3, got %d", res.ExitCode)
	}
	if strings.TrimSpace(res.Stderr) != "oops" {
		t.Errorf("Expected stderr 'oops', got %q", res.Stderr)
	}
}

func TestRunUsesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create marker: %v", err)
	}
	r := NewExecRunner()

	res := r.Run("ls", dir)
	if res.ExitCode != 0 {
		t.Fatalf("Expected exit 0, got %d", res.ExitCode)
	}
	if !strings.Contains(res.Stdout, "marker.txt") {
		t.Errorf("Expected marker.txt in listing, got %q", res.Stdout)
	}
}

func TestRunMissingCommand(t *testing.T) {
	r := NewExecRunner()

	res := r.Run("definitely-not-a-command-xyz", t.TempDir())
	if res.ExitCode == 0 {
		t.Error("Expected a nonzero exit code")
	}
	if res.Stderr == "" {
		t.Error("Expected an error message on stderr")
	}
}

func TestRunDisablesGitPager(t *testing.T) {
	r := NewExecRunner()

	res := r.Run("printenv GIT_PAGER", t.TempDir())
	if strings.TrimSpace(res.Stdout) != "cat" {
		t.Errorf("Expected GIT_PAGER=cat, got %q", res.Stdout)
	}
}
