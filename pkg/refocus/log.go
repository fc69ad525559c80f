package refocus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// refocusLog is a minimal append-only sink for refocus diagnostics, grounded
// on the teacher's RunLogger (pkg/utils/runlog.go): a mutex-guarded *os.File
// opened O_CREATE|O_WRONLY|O_APPEND, best-effort end to end. Unlike
// RunLogger's one-JSON-object-per-line format, each record here is a
// timestamp line followed by a pretty-printed JSON blob and a blank line,
// per spec §6.
type refocusLog struct {
	mu sync.Mutex
	f  *os.File
}

var (
	globalRefocusLog *refocusLog
	refocusLogOnce   sync.Once
)

// getRefocusLog opens (once) the sink at <cwd>/.doh/logs/qwen.log. If the
// directory or file can't be created, a notice goes to stderr and logging is
// disabled for the remainder of the process.
func getRefocusLog() *refocusLog {
	refocusLogOnce.Do(func() {
		globalRefocusLog = &refocusLog{}

		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintln(os.Stderr, "refocus: log disabled: cannot determine working directory:", err)
			return
		}

		dir := filepath.Join(cwd, ".doh", "logs")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintln(os.Stderr, "refocus: log disabled: cannot create log directory:", err)
			return
		}

		path := filepath.Join(dir, "qwen.log")
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "refocus: log disabled: cannot open log file:", err)
			return
		}
		globalRefocusLog.f = f
	})
	return globalRefocusLog
}

// logEvent appends one record: "[<ISO-8601 UTC timestamp>] <message>" on its
// own line, followed by data pretty-printed as JSON and a blank separator
// line. Values under "arguments" or "content" keys are opportunistically
// re-parsed as JSON so nested tool payloads don't appear double-escaped.
func (l *refocusLog) logEvent(message string, data map[string]any) {
	if l == nil || l.f == nil {
		return
	}

	unescaped := make(map[string]any, len(data))
	for k, v := range data {
		if s, ok := v.(string); ok && (k == "arguments" || k == "content") {
			var parsed any
			if err := json.Unmarshal([]byte(s), &parsed); err == nil {
				unescaped[k] = parsed
				continue
			}
		}
		unescaped[k] = v
	}

	body, err := json.MarshalIndent(unescaped, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "refocus: log marshal failed:", err)
		return
	}

	line := fmt.Sprintf("[%s] %s\n%s\n\n", time.Now().UTC().Format(time.RFC3339), message, string(body))

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.f.WriteString(line); err != nil {
		fmt.Fprintln(os.Stderr, "refocus: log write failed:", err)
	}
}
