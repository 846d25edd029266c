package pager

import "testing"

func kinds(lines []Line) []LineKind {
	out := make([]LineKind, len(lines))
	for i, l := range lines {
		out[i] = l.Kind
	}
	return out
}

func TestClassifyGitStatusSections(t *testing.T) {
	input := []string{
		"On branch main",
		"Changes to be committed:",
		`  (use "git restore --staged <file>..." to unstage)`,
		"\tmodified:   a.go",
		"Changes not staged for commit:",
		`  (use "git add <file>..." to update what will be committed)`,
		"\tmodified:   b.go",
	}

	got := ClassifyLines(input)
	want := []LineKind{
		KindPlain,
		KindSection,
		KindHint,
		KindAddition,
		KindSection,
		KindHint,
		KindDeletion,
	}

	for i, k := range kinds(got) {
		if k != want[i] {
			t.Errorf("line %d (%q): kind %v, want %v", i, input[i], k, want[i])
		}
	}
}

func TestClassifyHintOutsideSectionIsPlain(t *testing.T) {
	got := ClassifyLines([]string{`  (use "git add" ...)`})
	if got[0].Kind != KindPlain {
		t.Errorf("Hint line before any section banner should be plain, got %v", got[0].Kind)
	}
}

func TestClassifyHunkMarkerSpans(t *testing.T) {
	got := ClassifyLines([]string{"@@ -1,2 +1,3 @@ func main() {"})
	line := got[0]

	if line.Kind != KindHunk {
		t.Fatalf("Expected hunk line, got %v", line.Kind)
	}
	if line.Pre != "" {
		t.Errorf("Expected empty pre span, got %q", line.Pre)
	}
	if line.Marker != "@@ -1,2 +1,3 @@" {
		t.Errorf("Marker should stop at the second @@, got %q", line.Marker)
	}
	if line.Post != " func main() {" {
		t.Errorf("Expected post span with context text, got %q", line.Post)
	}
}

func TestClassifyDiffLines(t *testing.T) {
	input := []string{
		"--- a/main.go",
		"+++ b/main.go",
		"+added line",
		"-removed line",
		" context line",
	}

	got := ClassifyLines(input)
	want := []LineKind{KindFileHeader, KindFileHeader, KindAddition, KindDeletion, KindPlain}
	for i, k := range kinds(got) {
		if k != want[i] {
			t.Errorf("line %d (%q): kind %v, want %v", i, input[i], k, want[i])
		}
	}
}

func TestClassifySectionStatePersistsAcrossDiffLines(t *testing.T) {
	input := []string{
		"Changes not staged for commit:",
		"+literal plus line",
		"\tmodified:   c.go",
	}

	got := ClassifyLines(input)
	if got[1].Kind != KindAddition {
		t.Errorf("Explicit + prefix wins over section color, got %v", got[1].Kind)
	}
	if got[2].Kind != KindDeletion {
		t.Errorf("Section color should still apply after a diff line, got %v", got[2].Kind)
	}
}
