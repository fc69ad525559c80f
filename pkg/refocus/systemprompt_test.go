package refocus

import (
	"strings"
	"testing"
)

func TestRenderEnvironmentExtractsFields(t *testing.T) {
	canned := "Today's date is 2026-08-01.\nMy operating system is: linux\nI'm currently working in the directory: /repo\n"

	got := renderEnvironment(canned)

	for _, want := range []string{"2026-08-01", "linux", "/repo"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected environment block to contain %q, got %q", want, got)
		}
	}
}

func TestRenderEnvironmentFallsBackOnMissingFields(t *testing.T) {
	got := renderEnvironment("")

	if !strings.Contains(got, "unknown") {
		t.Fatalf("expected fallback OS value 'unknown', got %q", got)
	}
}

func TestConsecutiveRunsGroupsAscendingSpans(t *testing.T) {
	mapping := fileMapping{1: "a", 2: "b", 3: "c", 7: "g", 8: "h"}

	runs := consecutiveRuns(mapping)

	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d: %#v", len(runs), runs)
	}
	if runs[0] != (lineRun{Start: 1, End: 3}) {
		t.Fatalf("unexpected first run: %#v", runs[0])
	}
	if runs[1] != (lineRun{Start: 7, End: 8}) {
		t.Fatalf("unexpected second run: %#v", runs[1])
	}
}

func TestRenderFileStatesEmitsPlaceholderForUntrackedContent(t *testing.T) {
	vfs := VirtualFileSystem{"/a.txt": fileMapping{}}

	got := renderFileStates(vfs)

	if !strings.Contains(got, fileNotTrackedNote) {
		t.Fatalf("expected untracked-content placeholder, got %q", got)
	}
}

func TestRenderFileStatesDividesMultipleFiles(t *testing.T) {
	vfs := VirtualFileSystem{
		"/a.txt": fileMapping{1: "a"},
		"/b.txt": fileMapping{1: "b"},
	}

	got := renderFileStates(vfs)

	if !strings.Contains(got, endOfFileDivider) {
		t.Fatalf("expected a divider between two files, got %q", got)
	}
}
