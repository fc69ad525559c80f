package refocus

// deconstruct splits the input message list into the canned preamble, the
// real conversation, and the set of movable tool-call/result pairs, then
// builds the VFS from the file-operation subset of those pairs.
func deconstruct(input []Message) deconstructedTranscript {
	if len(input) < 3 {
		return deconstructedTranscript{
			RealConversation:  input,
			VFS:               VirtualFileSystem{},
			FileOpToolCallIDs: map[string]bool{},
		}
	}

	dt := deconstructedTranscript{
		FileOpToolCallIDs: map[string]bool{},
	}
	if input[0].Role == "system" {
		dt.SystemPrompt = input[0].Content
	}
	if input[1].Role == "user" {
		dt.CannedUserContext = input[1].Content
	}
	if input[2].Role == "assistant" {
		dt.CannedAssistantAck = input[2].Content
	}

	dt.RealConversation = input[3:]

	strat := analyzeStrategy(dt.RealConversation)

	callsByID := map[string]ToolCall{}
	for _, msg := range input {
		if msg.Role == "assistant" {
			for _, tc := range msg.ToolCalls {
				callsByID[tc.ID] = tc
			}
		}
	}

	for _, msg := range input {
		if msg.Role != "tool" {
			continue
		}
		call, ok := callsByID[msg.ToolCallId]
		if !ok {
			continue
		}
		if strat.KeepLastCycle && strat.KeptIDs[call.ID] {
			continue
		}
		dt.MovableToolPairs = append(dt.MovableToolPairs, toolPair{Call: call, Result: msg.Content})
	}

	dt.VFS = buildVFS(dt.MovableToolPairs)

	residual := dt.MovableToolPairs[:0:0]
	for _, pair := range dt.MovableToolPairs {
		if op := classify(pair.Call, pair.Result); op != nil {
			dt.FileOpToolCallIDs[op.ToolCallID] = true
			continue
		}
		residual = append(residual, pair)
	}
	dt.MovableToolPairs = residual

	return dt
}
