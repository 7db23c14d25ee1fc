// Package validate turns a raw LLM reply into a code candidate and runs
// best-effort sanity checks over it. All checks are advisory: a failed check
// flips a flag on the Result, it never aborts a generation.
package validate

import (
	"strings"

	"github.com/go-python/gpython/parser"
	"github.com/go-python/gpython/py"

	"github.com/agentfactory/backend/pkg/catalog"
)

// Result is the validation outcome for one raw reply.
type Result struct {
	// Code is the extracted code candidate, fence markers excluded.
	Code string
	// SyntaxValid reports whether Code parses as Python. SyntaxError holds
	// the parser message when it does not.
	SyntaxValid bool
	SyntaxError string
	// FrameworkValid reports whether Code references the imports and
	// primitives expected for the target framework.
	FrameworkValid bool
}

// Run extracts the code candidate from raw and checks it against the target
// framework. Narration around the code is discarded with the fences.
func Run(f catalog.Framework, raw string) Result {
	code := ExtractCode(raw)
	ok, msg := CheckSyntax(code)
	return Result{
		Code:           code,
		SyntaxValid:    ok,
		SyntaxError:    msg,
		FrameworkValid: CheckFramework(f, code),
	}
}

func isFence(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "```") || strings.HasPrefix(t, "~~~")
}

// ExtractCode returns the contents of the first fenced code block in raw,
// excluding the fence lines themselves. Later blocks are ignored. When no
// fence is present the whole trimmed text is the candidate; an unterminated
// fence takes everything after the opening line.
func ExtractCode(raw string) string {
	lines := strings.Split(raw, "\n")

	start := -1
	for i, line := range lines {
		if isFence(line) {
			start = i
			break
		}
	}
	if start == -1 {
		return strings.TrimSpace(raw)
	}

	var body []string
	for _, line := range lines[start+1:] {
		if isFence(line) {
			break
		}
		body = append(body, line)
	}
	return strings.TrimSpace(strings.Join(body, "\n"))
}

// CheckSyntax attempts a syntax-only Python parse of code. On failure it
// returns false and the parser's message. It never executes anything and
// makes no claim beyond "this would get past the parser".
func CheckSyntax(code string) (bool, string) {
	// The grammar requires a trailing newline to close the last statement.
	if _, err := parser.ParseString(code+"\n", py.ExecMode); err != nil {
		return false, err.Error()
	}
	return true, ""
}

// CheckFramework reports whether code contains the imports and primitives the
// system prompt demanded for the framework. Purely lexical: whitespace is
// stripped and matching is case-insensitive, so it tolerates formatting
// variance but is in no way an API-correctness check.
func CheckFramework(f catalog.Framework, code string) bool {
	norm := strings.ToLower(strings.ReplaceAll(code, " ", ""))

	switch f {
	case catalog.CrewAI:
		for _, el := range []string{"crewai", "agent", "task", "crew"} {
			if !strings.Contains(norm, el) {
				return false
			}
		}
		return true

	case catalog.LangGraph:
		hasImport := strings.Contains(norm, "fromlanggraph.graphimport") ||
			strings.Contains(norm, "importlanggraph")
		hasGraph := strings.Contains(norm, "stategraph(") ||
			strings.Contains(norm, "=stategraph")
		return hasImport && hasGraph

	case catalog.AutoGen:
		hasImport := strings.Contains(norm, "importautogen") ||
			strings.Contains(norm, "fromautogenimport")
		hasAgent := strings.Contains(norm, "userproxyagent") ||
			strings.Contains(norm, "assistantagent")
		hasManager := strings.Contains(norm, "groupchatmanager") ||
			strings.Contains(norm, "agent=")
		return hasImport && (hasAgent || hasManager)
	}
	return false
}
