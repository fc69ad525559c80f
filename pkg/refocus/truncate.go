package refocus

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const maxSearchHits = 1000

var hitLinePattern = regexp.MustCompile(`^L\d+:`)

// truncateSearchResult bounds grep-like search_file_content output so it
// doesn't blow up the system prompt. Any other function name, or a result
// that doesn't decode to {"output": string}, passes through unchanged.
func truncateSearchResult(functionName, result string) string {
	if functionName != toolSearchContent {
		return result
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(result), &decoded); err != nil {
		return result
	}
	output, ok := decoded["output"].(string)
	if !ok {
		return result
	}

	truncated, changed := truncateHitLines(output)
	if !changed {
		return result
	}

	decoded["output"] = truncated
	b, err := json.Marshal(decoded)
	if err != nil {
		return result
	}
	return string(b)
}

// truncateHitLines keeps at most the first 20 lines matching ^L\d+: and
// shortens any overlong retained hit line. changed is false when nothing
// needed to be rewritten (at most 20 hits and no overlong line).
func truncateHitLines(output string) (string, bool) {
	lines := strings.Split(output, "\n")

	total := 0
	for _, line := range lines {
		if hitLinePattern.MatchString(line) {
			total++
		}
	}

	var out []string
	hits := 0
	changed := false
	for _, line := range lines {
		if hitLinePattern.MatchString(line) {
			if hits >= 20 {
				out = append(out, fmt.Sprintf("[... truncated %d more results]", total-20))
				changed = true
				break
			}
			hits++
			shortened := shortenHitLine(line)
			if shortened != line {
				changed = true
			}
			out = append(out, shortened)
			continue
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n"), changed
}

// shortenHitLine truncates the content after the "L<N>: " prefix to 1000
// characters, appending an ellipsis, if it exceeds that length.
func shortenHitLine(line string) string {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return line
	}
	prefix := line[:idx+1]
	rest := line[idx+1:]
	content := strings.TrimPrefix(rest, " ")
	leadingSpace := ""
	if len(rest) > len(content) {
		leadingSpace = " "
	}
	if len(content) > maxSearchHits {
		content = content[:maxSearchHits] + "..."
	}
	return prefix + leadingSpace + content
}
