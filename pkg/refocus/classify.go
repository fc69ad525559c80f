package refocus

import "encoding/json"

const (
	toolReadFile      = "read_file"
	toolReadManyFiles = "read_many_files"
	toolWriteFile     = "write_file"
	toolReplace       = "replace"
	toolSearchContent = "search_file_content"
)

// classify inspects a tool call's decoded arguments and decides whether it
// is a recognized file operation. It is a pure function: no disk access, no
// side effects. The result (the tool result string) is accepted for
// signature symmetry with the spec but is currently unused by classification
// itself — classification only depends on the call's arguments.
func classify(call ToolCall, _ string) *fileOperation {
	var args map[string]any
	if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
		return nil
	}

	switch call.Function.Name {
	case toolReadFile, toolReadManyFiles:
		path, rng := readArgsPath(args)
		if path == "" {
			return nil
		}
		return &fileOperation{Kind: fileOpRead, Path: path, Range: rng, ToolCallID: call.ID}

	case toolWriteFile:
		path, ok := args["file_path"].(string)
		if !ok || path == "" {
			return nil
		}
		if _, hasContent := args["content"]; !hasContent {
			return nil
		}
		return &fileOperation{Kind: fileOpWrite, Path: path, ToolCallID: call.ID}

	case toolReplace:
		path, ok := args["file_path"].(string)
		if !ok || path == "" {
			return nil
		}
		return &fileOperation{Kind: fileOpEdit, Path: path, ToolCallID: call.ID}

	default:
		return nil
	}
}

// readArgsPath extracts the target path and optional range from read_file /
// read_many_files arguments. read_many_files tracks only the first entry of
// absolute_paths — a documented truncation (spec §9 O1), not an oversight.
func readArgsPath(args map[string]any) (string, *fileRange) {
	var path string
	if p, ok := args["absolute_path"].(string); ok && p != "" {
		path = p
	} else if paths, ok := args["absolute_paths"].([]any); ok && len(paths) > 0 {
		if p, ok := paths[0].(string); ok {
			path = p
		}
	}
	if path == "" {
		return "", nil
	}

	var rng *fileRange
	offset, hasOffset := toInt(args["offset"])
	limit, hasLimit := toInt(args["limit"])
	if hasOffset || hasLimit {
		rng = &fileRange{Offset: offset, Limit: limit}
	}
	return path, rng
}

// toInt coerces a decoded JSON numeric value (float64) to int. Returns
// (0, false) if v is absent or not numeric.
func toInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}
