package gitinfo

import "testing"

func stubResolver(branch *string, calls *int) *Resolver {
	return &Resolver{lookup: func(dir string) string {
		*calls++
		return *branch
	}}
}

func TestBranchMemoized(t *testing.T) {
	branch := "main"
	calls := 0
	r := stubResolver(&branch, &calls)

	if got := r.Branch("/repo"); got != "main" {
		t.Errorf("Expected 'main', got %q", got)
	}
	r.Branch("/repo")
	r.Branch("/repo")
	if calls != 1 {
		t.Errorf("Expected one lookup, got %d", calls)
	}
}

func TestBranchReQueriedOnPathChange(t *testing.T) {
	branch := "main"
	calls := 0
	r := stubResolver(&branch, &calls)

	r.Branch("/repo")
	r.Branch("/other")
	if calls != 2 {
		t.Errorf("Expected two lookups, got %d", calls)
	}
}

func TestInvalidateForcesLookup(t *testing.T) {
	branch := "main"
	calls := 0
	r := stubResolver(&branch, &calls)

	r.Branch("/repo")
	branch = "feature"
	if got := r.Branch("/repo"); got != "main" {
		t.Errorf("Cache should still serve 'main', got %q", got)
	}

	r.Invalidate()
	if got := r.Branch("/repo"); got != "feature" {
		t.Errorf("Expected re-queried 'feature', got %q", got)
	}
}

func TestNoteCommand(t *testing.T) {
	mutating := []string{
		"git checkout feature",
		"git switch -c topic",
		"git -C /x pull",
		"git commit -m 'x'",
		"cd /x ; git merge other", // matched anywhere in the sub-command
		"git stash",
	}
	harmless := []string{
		"git status",
		"git log --oneline",
		"git diff",
		"ls -la",
	}

	for _, cmd := range mutating {
		branch := "main"
		calls := 0
		r := stubResolver(&branch, &calls)
		r.Branch("/repo")

		r.NoteCommand(cmd)
		r.Branch("/repo")
		if calls != 2 {
			t.Errorf("NoteCommand(%q) should invalidate, lookups=%d", cmd, calls)
		}
	}

	for _, cmd := range harmless {
		branch := "main"
		calls := 0
		r := stubResolver(&branch, &calls)
		r.Branch("/repo")

		r.NoteCommand(cmd)
		r.Branch("/repo")
		if calls != 1 {
			t.Errorf("NoteCommand(%q) should not invalidate, lookups=%d", cmd, calls)
		}
	}
}
