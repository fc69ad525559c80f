package refocus

import "strings"

// collapseAssistants folds each run of consecutive assistant messages into
// one: content is deduped by exact match (first occurrence order wins) and
// joined with "\n"; tool-call lists are concatenated without dedup. A run
// whose collected content and calls are both empty produces nothing.
func collapseAssistants(messages []Message) []Message {
	out := make([]Message, 0, len(messages))

	i := 0
	for i < len(messages) {
		if messages[i].Role != "assistant" {
			out = append(out, messages[i])
			i++
			continue
		}

		var contents []string
		seen := map[string]bool{}
		var calls []ToolCall

		j := i
		for j < len(messages) && messages[j].Role == "assistant" {
			c := strings.TrimSpace(messages[j].Content)
			if c != "" && !seen[c] {
				seen[c] = true
				contents = append(contents, c)
			}
			calls = append(calls, messages[j].ToolCalls...)
			j++
		}

		if len(contents) > 0 || len(calls) > 0 {
			merged := Message{Role: "assistant", Content: strings.Join(contents, "\n")}
			if len(calls) > 0 {
				merged.ToolCalls = calls
			}
			out = append(out, merged)
		}

		i = j
	}

	return out
}
