package refocus

// buildVFS reads current disk state for every file-operation pair, in order
// of appearance. Reads merge into the existing per-path mapping; writes and
// edits replace it wholesale with a fresh full-file read. This shows what is
// on disk *now*, not what the tool result once said — the freshest snapshot
// always wins, regardless of which tool call produced it.
func buildVFS(pairs []toolPair) VirtualFileSystem {
	vfs := VirtualFileSystem{}

	for _, pair := range pairs {
		op := classify(pair.Call, pair.Result)
		if op == nil {
			continue
		}

		switch op.Kind {
		case fileOpRead:
			offset, limit := 0, 0
			if op.Range != nil {
				offset, limit = op.Range.Offset, op.Range.Limit
			}
			fresh := readRange(op.Path, offset, limit)
			existing, ok := vfs[op.Path]
			if !ok {
				existing = fileMapping{}
			}
			for line, text := range fresh {
				existing[line] = text
			}
			vfs[op.Path] = existing

		case fileOpWrite, fileOpEdit:
			vfs[op.Path] = readRange(op.Path, 0, 0)
		}
	}

	return vfs
}
