package services

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Models rarely return clean JSON: responses arrive wrapped in prose or
// markdown fences, with curly quotes, single-quoted strings, or bare keys.
// ExtractJSON digs the object out and repairs it through a fixed pipeline of
// named steps so each repair stays independently testable.

type repairStep func(string) string

// repairPipeline runs inside the brace span, in this order. Single-quote
// replacement must run after curly-quote replacement and before key quoting,
// otherwise already-repaired delimiters get double-processed.
var repairPipeline = []repairStep{
	replaceSmartQuotes,
	replaceSingleQuotes,
	quoteBareKeys,
}

var bareKeyRe = regexp.MustCompile(`([{,]\s*)([A-Za-z_$][A-Za-z0-9_$]*)\s*:`)

var smartQuoteReplacer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"„", `"`,
	"‘", "'",
	"’", "'",
)

func replaceSmartQuotes(s string) string {
	return smartQuoteReplacer.Replace(s)
}

// replaceSingleQuotes swaps every single quote for a double quote. This is
// best-effort: an apostrophe inside a value breaks the parse and the caller
// degrades to its fallback.
func replaceSingleQuotes(s string) string {
	return strings.ReplaceAll(s, "'", `"`)
}

func quoteBareKeys(s string) string {
	return bareKeyRe.ReplaceAllString(s, `$1"$2":`)
}

// stripCodeFences drops a leading ``` or ```json fence line and the matching
// closing fence.
func stripCodeFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	} else {
		s = ""
	}
	if end := strings.LastIndex(s, "```"); end >= 0 {
		s = s[:end]
	}
	return strings.TrimSpace(s)
}

// extractObjectSpan slices from the first { to the last }. The second return
// is false when no such span exists.
func extractObjectSpan(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return "", false
	}
	return s[start : end+1], true
}

// ExtractJSON locates the JSON object embedded in a raw model response,
// repairs it, and unmarshals it into T. Every failure path returns fallback
// unchanged; the result is always a fully parsed value or exactly fallback,
// never a partial structure.
func ExtractJSON[T any](raw string, fallback T) T {
	s := strings.TrimSpace(raw)
	s = stripCodeFences(s)

	span, ok := extractObjectSpan(s)
	if !ok {
		return fallback
	}

	for _, step := range repairPipeline {
		span = step(span)
	}

	var out T
	if err := json.Unmarshal([]byte(span), &out); err != nil {
		return fallback
	}
	return out
}
