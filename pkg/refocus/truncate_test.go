package refocus

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"
)

func makeGrepOutput(hits int) string {
	var b strings.Builder
	b.WriteString("Found matches:\n")
	for i := 1; i <= hits; i++ {
		b.WriteString("L")
		b.WriteString(strconv.Itoa(i))
		b.WriteString(": match line content\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func TestTruncateSearchResultPassesThroughOtherTools(t *testing.T) {
	result := `{"output":"anything"}`
	got := truncateSearchResult("read_file", result)
	if got != result {
		t.Fatalf("expected identity for non-search tool, got %q", got)
	}
}

func TestTruncateSearchResultPassesThroughMalformedJSON(t *testing.T) {
	result := "not json at all"
	got := truncateSearchResult(toolSearchContent, result)
	if got != result {
		t.Fatalf("expected identity for malformed JSON, got %q", got)
	}
}

func TestTruncateSearchResultCapsAt20Hits(t *testing.T) {
	output := makeGrepOutput(200)
	raw, _ := json.Marshal(map[string]string{"output": output})

	got := truncateSearchResult(toolSearchContent, string(raw))

	var decoded map[string]string
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("expected valid JSON back, got error: %v", err)
	}

	hitCount := strings.Count(decoded["output"], "\nL")
	// +1 for the first line if it's a hit line (it's not here; "Found matches:" is a header).
	if hitCount > 20 {
		t.Fatalf("expected at most 20 retained hit lines, counted %d", hitCount)
	}
	if !strings.Contains(decoded["output"], "[... truncated 180 more results]") {
		t.Fatalf("expected truncation marker, got %q", decoded["output"])
	}
}

func TestTruncateSearchResultShortensOverlongHitLine(t *testing.T) {
	longContent := strings.Repeat("x", 2000)
	output := "L1: " + longContent
	raw, _ := json.Marshal(map[string]string{"output": output})

	got := truncateSearchResult(toolSearchContent, string(raw))

	var decoded map[string]string
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("expected valid JSON back, got error: %v", err)
	}
	if !strings.HasSuffix(decoded["output"], "...") {
		t.Fatalf("expected shortened line to end in ellipsis, got %q", decoded["output"])
	}
	if len(decoded["output"]) >= len(output) {
		t.Fatalf("expected line to be shortened")
	}
}

func TestTruncateSearchResultUnderLimitUnchanged(t *testing.T) {
	output := makeGrepOutput(5)
	raw, _ := json.Marshal(map[string]string{"output": output})

	got := truncateSearchResult(toolSearchContent, string(raw))

	var decoded map[string]string
	json.Unmarshal([]byte(got), &decoded)
	if decoded["output"] != output {
		t.Fatalf("expected output unchanged under the cap, got %q want %q", decoded["output"], output)
	}
}
