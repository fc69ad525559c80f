package refocus

import (
	"os"
	"strconv"
	"testing"
)

func TestBuildVFSMergesReadRanges(t *testing.T) {
	path := writeTempFile(t, "one\ntwo\nthree\nfour")

	pairs := []toolPair{
		{Call: call("c1", toolReadFile, jsonArgs(path, 0, 2)), Result: "one\ntwo"},
		{Call: call("c2", toolReadFile, jsonArgs(path, 2, 2)), Result: "three\nfour"},
	}

	vfs := buildVFS(pairs)

	mapping, ok := vfs[path]
	if !ok {
		t.Fatalf("expected %s to be tracked", path)
	}
	want := fileMapping{1: "one", 2: "two", 3: "three", 4: "four"}
	for line, text := range want {
		if mapping[line] != text {
			t.Fatalf("line %d: expected %q, got %q", line, text, mapping[line])
		}
	}
}

func TestBuildVFSWriteReplacesWithCurrentDisk(t *testing.T) {
	path := writeTempFile(t, "OLD")

	pairs := []toolPair{
		{Call: call("c1", toolWriteFile, `{"file_path":"` + path + `","content":"OLD"}`), Result: "wrote file"},
	}

	// Disk state changes after the tool call executed, before refocus runs.
	if err := os.WriteFile(path, []byte("X"), 0o644); err != nil {
		t.Fatalf("failed to update disk state: %v", err)
	}

	vfs := buildVFS(pairs)

	mapping := vfs[path]
	if len(mapping) != 1 || mapping[1] != "X" {
		t.Fatalf("expected current disk content 'X', got %#v", mapping)
	}
}

func TestBuildVFSWriteThenReadKeepsFreshestSnapshot(t *testing.T) {
	path := writeTempFile(t, "OLD")

	pairs := []toolPair{
		{Call: call("c1", toolWriteFile, `{"file_path":"`+path+`","content":"OLD"}`), Result: "wrote file"},
		{Call: call("c2", toolReadFile, `{"absolute_path":"`+path+`"}`), Result: "OLD"},
	}

	if err := os.WriteFile(path, []byte("X"), 0o644); err != nil {
		t.Fatalf("failed to update disk state: %v", err)
	}

	vfs := buildVFS(pairs)

	mapping := vfs[path]
	if len(mapping) != 1 || mapping[1] != "X" {
		t.Fatalf("expected current disk content 'X' regardless of tool order, got %#v", mapping)
	}
}

func TestBuildVFSSkipsNonFileOps(t *testing.T) {
	pairs := []toolPair{
		{Call: call("c1", "run_shell_command", `{"command":"ls"}`), Result: "a.txt"},
	}

	vfs := buildVFS(pairs)

	if len(vfs) != 0 {
		t.Fatalf("expected no VFS entries for non-file ops, got %#v", vfs)
	}
}

func jsonArgs(path string, offset, limit int) string {
	return `{"absolute_path":"` + path + `","offset":` + strconv.Itoa(offset) + `,"limit":` + strconv.Itoa(limit) + `}`
}
