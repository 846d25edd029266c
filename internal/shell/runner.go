package shell

import (
	"bytes"
	"os"
	"os/exec"
)

// Result is the captured outcome of one shell sub-command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes one command line synchronously in a working directory.
// Implementations never return an error: failures surface through Stderr and
// ExitCode so callers can page them like any other output.
type Runner interface {
	Run(command, dir string) Result
}

// ExecRunner runs commands through the OS shell.
type ExecRunner struct{}

func NewExecRunner() ExecRunner {
	return ExecRunner{}
}

func (ExecRunner) Run(command, dir string) Result {
	cmd := exec.Command("sh", "-c", command)
	cmd.Dir = dir
	// Keep git and friends from spawning their own pager under us.
	cmd.Env = append(os.Environ(), "GIT_PAGER=cat")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			// The command could not be started at all; report it like a
			// shell would.
			if result.Stderr != "" {
				result.Stderr += "\n"
			}
			result.Stderr += err.Error()
			result.ExitCode = 127
		}
	}
	return result
}
