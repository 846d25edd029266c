package cmdline

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		buffer string
		want   Kind
	}{
		{"git status", KindShell},
		{"", KindShell},
		{"cdparanoia", KindShell},
		{"cd", KindPath},
		{"cd ..", KindPath},
		{"cd /tmp", KindPath},
		{"/foo", KindFilter},
		{"/", KindFilter},
		{"/cd x", KindFilter},
	}

	for _, c := range cases {
		if got := Classify(c.buffer); got != c.want {
			t.Errorf("Classify(%q) = %v, want %v", c.buffer, got, c.want)
		}
	}
}

func TestFilterPattern(t *testing.T) {
	if got := FilterPattern("/^ab"); got != "^ab" {
		t.Errorf("Expected '^ab', got %q", got)
	}
	if got := FilterPattern("/"); got != "" {
		t.Errorf("Expected empty pattern, got %q", got)
	}
}

func TestIsLiveFilter(t *testing.T) {
	if IsLiveFilter("/") {
		t.Error("Bare sentinel is not a live filter")
	}
	if !IsLiveFilter("/a") {
		t.Error("Sentinel plus one char should be live")
	}
	if IsLiveFilter("ls") {
		t.Error("Shell buffer is never a live filter")
	}
}

func TestSplitCommands(t *testing.T) {
	got := SplitCommands("  git add . ; git commit ;; cd /tmp ;")
	want := []string{"git add .", "git commit", "cd /tmp"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitCommands = %v, want %v", got, want)
	}

	if parts := SplitCommands("  ;  ; "); parts != nil {
		t.Errorf("Expected no parts, got %v", parts)
	}
}

func TestParseChangeDir(t *testing.T) {
	if target, ok := ParseChangeDir("cd"); !ok || target != "" {
		t.Errorf("Expected bare cd with empty target, got %q, %v", target, ok)
	}
	if target, ok := ParseChangeDir("cd  ~/src "); !ok || target != "~/src" {
		t.Errorf("Expected '~/src', got %q, %v", target, ok)
	}
	if _, ok := ParseChangeDir("cdx"); ok {
		t.Error("'cdx' is not a cd sub-command")
	}
	if _, ok := ParseChangeDir("echo cd"); ok {
		t.Error("'echo cd' is not a cd sub-command")
	}
}
