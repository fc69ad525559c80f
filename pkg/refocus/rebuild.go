package refocus

import "strings"

// rebuild produces the final (pre-collapse) message list: the composed
// system message followed by whatever survives from the real conversation
// once moved tool calls are spliced out.
func rebuild(dt deconstructedTranscript, strat strategy, systemMessage string) []Message {
	out := []Message{{Role: "system", Content: systemMessage}}

	movedIDs := map[string]bool{}
	for _, pair := range dt.MovableToolPairs {
		movedIDs[pair.Call.ID] = true
	}
	for id := range dt.FileOpToolCallIDs {
		movedIDs[id] = true
	}

	callNameByID := map[string]string{}
	for _, msg := range dt.RealConversation {
		if msg.Role == "assistant" {
			for _, tc := range msg.ToolCalls {
				callNameByID[tc.ID] = tc.Function.Name
			}
		}
	}

	n := len(dt.RealConversation)
	for i, msg := range dt.RealConversation {
		switch msg.Role {
		case "system":
			continue

		case "tool":
			if movedIDs[msg.ToolCallId] {
				continue
			}
			name := callNameByID[msg.ToolCallId]
			rewritten := msg
			rewritten.Content = truncateSearchResult(name, msg.Content)
			out = append(out, rewritten)

		case "assistant":
			if len(msg.ToolCalls) > 0 {
				surviving := make([]ToolCall, 0, len(msg.ToolCalls))
				for _, tc := range msg.ToolCalls {
					if !movedIDs[tc.ID] {
						surviving = append(surviving, tc)
					}
				}
				if len(surviving) > 0 {
					rewritten := msg
					rewritten.ToolCalls = surviving
					out = append(out, rewritten)
					continue
				}
				if strings.TrimSpace(msg.Content) != "" {
					out = append(out, Message{Role: "assistant", Content: msg.Content})
				}
				continue
			}
			if strings.TrimSpace(msg.Content) != "" {
				out = append(out, msg)
			}

		case "user":
			if strings.TrimSpace(msg.Content) == pleaseContinue {
				if i == n-1 && strat.KeepLastCycle {
					out = append(out, msg)
				}
				continue
			}
			out = append(out, msg)

		default:
			out = append(out, msg)
		}
	}

	return out
}
