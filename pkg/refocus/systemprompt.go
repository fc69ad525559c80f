package refocus

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"
)

// agentPreamble is the fixed description of the agent's operating
// discipline, prepended to every regenerated system prompt. Its exact
// wording is not load-bearing for any downstream consumer; it exists so the
// model sees consistent framing regardless of how much of the real
// conversation got summarized away.
const agentPreamble = `You are an interactive CLI agent specializing in software engineering tasks.
Your primary goal is to help the user safely and efficiently, adhering strictly to the following core mandates.

Core Mandates:
- Search before you act. Read relevant files and search the codebase before making claims about how something works or proposing a change.
- Prefer absolute paths for every file tool call; a relative path is ambiguous the moment the working directory shifts.
- Keep conversational output concise. Let tool calls, not prose, do the work of investigating the codebase.
- Never invent file contents, APIs, or test results. If you have not read something, say so or go read it.
- When editing, match the surrounding code's existing style and conventions rather than imposing your own.`

const (
	environmentHeader    = "## Environment"
	fileStatesHeader     = "## Current File States"
	previousCallsHeader  = "## Previous Tool Calls and Results"
	endOfFileDivider     = "--- END OF FILE ---"
	endOfToolCallDivider = "--- END OF TOOL CALL ---"
	fileNotTrackedNote   = "(file modified but content not tracked)"
)

var (
	dateProbe = regexp.MustCompile(`Today's date is ([^.\n]+)`)
	osProbe   = regexp.MustCompile(`My operating system is: ([^\n]+)`)
	cwdProbe  = regexp.MustCompile(`I'm currently working in the directory: ([^\n]+)`)
)

// composeSystemPrompt builds the replacement system message: the fixed
// preamble, an Environment block extracted from the canned user context, a
// VFS-derived Current File States block, and a residual Previous Tool Calls
// block for everything movable that wasn't a file operation.
func composeSystemPrompt(cannedUserContext string, vfs VirtualFileSystem, residual []toolPair) string {
	var b strings.Builder
	b.WriteString(agentPreamble)
	b.WriteString("\n\n")
	b.WriteString(environmentHeader)
	b.WriteString("\n")
	b.WriteString(renderEnvironment(cannedUserContext))

	if len(vfs) > 0 {
		b.WriteString("\n\n")
		b.WriteString(fileStatesHeader)
		b.WriteString("\n")
		b.WriteString(renderFileStates(vfs))
	}

	if len(residual) > 0 {
		b.WriteString("\n\n")
		b.WriteString(previousCallsHeader)
		b.WriteString("\n")
		b.WriteString(renderPreviousToolCalls(residual))
	}

	return b.String()
}

// renderEnvironment extracts the date/OS/cwd fields the canned user-context
// message carries and falls back to live process state for any field the
// probes miss.
func renderEnvironment(cannedUserContext string) string {
	date := firstMatch(dateProbe, cannedUserContext)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	osName := firstMatch(osProbe, cannedUserContext)
	if osName == "" {
		osName = "unknown"
	}
	cwd := firstMatch(cwdProbe, cannedUserContext)
	if cwd == "" {
		if wd, err := os.Getwd(); err == nil {
			cwd = wd
		}
	}

	return fmt.Sprintf("Today's date is %s.\nMy operating system is: %s\nI'm currently working in the directory: %s", date, osName, cwd)
}

func firstMatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// renderFileStates emits one section per VFS path, grouping its tracked
// lines into maximal consecutive runs.
func renderFileStates(vfs VirtualFileSystem) string {
	paths := make([]string, 0, len(vfs))
	for p := range vfs {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var b strings.Builder
	for i, path := range paths {
		b.WriteString(path)
		b.WriteString("\n")

		mapping := vfs[path]
		if len(mapping) == 0 {
			b.WriteString(fileNotTrackedNote)
			b.WriteString("\n")
		} else {
			for _, run := range consecutiveRuns(mapping) {
				b.WriteString(renderRun(mapping, run))
			}
		}

		if i < len(paths)-1 {
			b.WriteString("\n")
			b.WriteString(endOfFileDivider)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// lineRun is an inclusive [Start, End] span of consecutive line numbers.
type lineRun struct {
	Start, End int
}

// consecutiveRuns sorts a file mapping's line numbers ascending and groups
// them into maximal runs where each number is exactly one greater than the
// previous.
func consecutiveRuns(mapping fileMapping) []lineRun {
	nums := make([]int, 0, len(mapping))
	for n := range mapping {
		nums = append(nums, n)
	}
	sort.Ints(nums)

	var runs []lineRun
	for _, n := range nums {
		if len(runs) > 0 && runs[len(runs)-1].End == n-1 {
			runs[len(runs)-1].End = n
			continue
		}
		runs = append(runs, lineRun{Start: n, End: n})
	}
	return runs
}

func renderRun(mapping fileMapping, run lineRun) string {
	var header string
	if run.Start == run.End {
		header = fmt.Sprintf("Line %d:", run.Start)
	} else {
		header = fmt.Sprintf("Lines %d-%d:", run.Start, run.End)
	}

	lines := make([]string, 0, run.End-run.Start+1)
	for n := run.Start; n <= run.End; n++ {
		lines = append(lines, mapping[n])
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n```\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n```\n")
	return b.String()
}

// renderPreviousToolCalls emits one entry per residual (non-file) pair: the
// function name as heading, pretty-printed arguments, and the
// truncation-pass result.
func renderPreviousToolCalls(pairs []toolPair) string {
	var b strings.Builder
	for i, pair := range pairs {
		b.WriteString(pair.Call.Function.Name)
		b.WriteString("\n\nArguments\n```json\n")
		b.WriteString(prettyJSON(pair.Call.Function.Arguments))
		b.WriteString("\n```\n\nResult\n```\n")
		b.WriteString(truncateSearchResult(pair.Call.Function.Name, pair.Result))
		b.WriteString("\n```\n")

		if i < len(pairs)-1 {
			b.WriteString("\n")
			b.WriteString(endOfToolCallDivider)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// prettyJSON re-encodes a raw JSON string with two-space indentation,
// falling back to the raw string verbatim if it doesn't decode.
func prettyJSON(raw string) string {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return raw
	}
	return string(b)
}
