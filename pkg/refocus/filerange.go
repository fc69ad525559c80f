package refocus

import (
	"os"
	"strings"
)

// readRange reads lines [offset+1, offset+limit] (1-indexed, inclusive) from
// path on disk. offset defaults to 0 and limit of 0 means "to end of file".
// Any I/O failure (missing file, permission, bad path) returns an empty
// mapping rather than an error: the VFS is best-effort by design.
func readRange(path string, offset, limit int) fileMapping {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileMapping{}
	}

	lines := splitLines(string(data))

	start := offset
	if start < 0 {
		start = 0
	}
	end := len(lines)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	if start >= len(lines) {
		return fileMapping{}
	}

	out := make(fileMapping, end-start)
	for i := start; i < end; i++ {
		out[i+1] = lines[i]
	}
	return out
}

// splitLines splits on \n without synthesizing a trailing empty entry when
// the file's last line already ends in \n.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
