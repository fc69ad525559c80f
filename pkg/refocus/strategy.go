package refocus

import "strings"

const pleaseContinue = "Please continue."

// analyzeStrategy decides whether the last tool-call cycle in conversation
// must stay live (rather than being moved into the system prompt's context
// block). The LLM may be mid-reasoning over the last cycle; removing it
// would break the in-flight thought. Earlier cycles are already complete and
// can be safely summarized.
func analyzeStrategy(conversation []Message) strategy {
	if len(conversation) == 0 {
		return strategy{}
	}

	last := conversation[len(conversation)-1]

	if last.Role == "tool" {
		return strategyForToolTail(conversation, last)
	}

	if last.Role == "user" && strings.TrimSpace(last.Content) == pleaseContinue && len(conversation) >= 2 {
		prev := conversation[len(conversation)-2]
		if prev.Role == "tool" {
			return strategyForToolTail(conversation[:len(conversation)-1], prev)
		}
	}

	return strategy{}
}

// strategyForToolTail builds the kept-ids set for a conversation ending on a
// tool result: find the assistant message owning that result's call id, and
// keep its entire tool-call fan-out together (parallel calls are not split).
func strategyForToolTail(conversation []Message, toolMsg Message) strategy {
	for i := len(conversation) - 1; i >= 0; i-- {
		msg := conversation[i]
		if msg.Role != "assistant" {
			continue
		}
		for _, tc := range msg.ToolCalls {
			if tc.ID == toolMsg.ToolCallId {
				kept := make(map[string]bool, len(msg.ToolCalls))
				for _, owned := range msg.ToolCalls {
					kept[owned.ID] = true
				}
				return strategy{KeepLastCycle: true, KeptIDs: kept}
			}
		}
	}

	kept := map[string]bool{}
	if toolMsg.ToolCallId != "" {
		kept[toolMsg.ToolCallId] = true
	}
	return strategy{KeepLastCycle: true, KeptIDs: kept}
}
