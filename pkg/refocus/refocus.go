// Package refocus rewrites a chat-completions message list for a CLI coding
// agent into a shorter, semantically equivalent list: the final live
// tool-call cycle is preserved intact, earlier tool-call/result pairs are
// collapsed into a compact context block inside a regenerated system
// prompt, and prior file-I/O tool traffic is replaced by a virtual
// filesystem snapshot re-read from disk.
package refocus

// Refocus is the single entry point. It is synchronous, single-threaded,
// and holds no state across calls: every intermediate structure is local to
// this call. Disk I/O (VFS construction) and the log sink are best-effort —
// neither can make Refocus return an error.
func Refocus(messages []Message) []Message {
	dt := deconstruct(messages)
	strat := analyzeStrategy(dt.RealConversation)

	systemMessage := composeSystemPrompt(dt.CannedUserContext, dt.VFS, dt.MovableToolPairs)
	rebuilt := rebuild(dt, strat, systemMessage)
	out := collapseAssistants(rebuilt)

	getRefocusLog().logEvent("refocus", map[string]any{
		"input_messages":   len(messages),
		"output_messages":  len(out),
		"vfs_paths":        len(dt.VFS),
		"moved_tool_pairs": len(dt.MovableToolPairs) + len(dt.FileOpToolCallIDs),
		"keep_last_cycle":  strat.KeepLastCycle,
	})

	return out
}
