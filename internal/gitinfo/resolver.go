package gitinfo

import (
	"context"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

const lookupTimeout = 800 * time.Millisecond

// branchMutating matches shell commands that can change which branch a
// repository is on, so the cached name must be re-queried afterwards.
var branchMutating = regexp.MustCompile(`(^|\s)git(\s+-[^\s]+)*\s+(checkout|switch|branch|merge|rebase|reset|pull|commit|stash|cherry-pick)\b`)

// Resolver answers "what branch is this directory on", memoized by the last
// queried path.
type Resolver struct {
	lookup func(dir string) string

	cachedPath   string
	cachedBranch string
	valid        bool
}

func NewResolver() *Resolver {
	return &Resolver{lookup: lookupBranch}
}

// Branch returns the branch name for dir, or "" when dir is not inside a
// repository. Repeated calls for the same path hit the cache.
func (r *Resolver) Branch(dir string) string {
	if r.valid && r.cachedPath == dir {
		return r.cachedBranch
	}
	r.cachedPath = dir
	r.cachedBranch = r.lookup(dir)
	r.valid = true
	return r.cachedBranch
}

// Invalidate drops the cached branch so the next Branch call re-queries.
func (r *Resolver) Invalidate() {
	r.valid = false
}

// NoteCommand invalidates the cache when an executed sub-command looks like
// it could move the repository to another branch.
func (r *Resolver) NoteCommand(command string) {
	if branchMutating.MatchString(command) {
		r.Invalidate()
	}
}

func lookupBranch(dir string) string {
	if _, err := exec.LookPath("git"); err != nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "git", "-C", dir, "symbolic-ref", "--quiet", "--short", "HEAD").Output()
	if err == nil {
		return strings.TrimSpace(string(out))
	}

	// Detached HEAD fallback.
	ctx2, cancel2 := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel2()
	out, err = exec.CommandContext(ctx2, "git", "-C", dir, "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
