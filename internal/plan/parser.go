package plan

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ParseModelResponse extracts a structured object from the model's free-form
// output. Strategy, in order: a fenced code block, then the first top-level
// brace-delimited region, then the whole text. The model's output format is
// not contractually guaranteed, so a failed parse never becomes an error —
// the raw text is returned under "rawResponse" for manual inspection.
func ParseModelResponse(text string) json.RawMessage {
	candidate := text
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		candidate = m[1]
	} else if start, end := strings.Index(text, "{"), strings.LastIndex(text, "}"); start != -1 && end > start {
		candidate = text[start : end+1]
	}

	trimmed := strings.TrimSpace(candidate)
	if trimmed != "" && json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed)
	}

	fallback, err := json.Marshal(map[string]string{"rawResponse": text})
	if err != nil {
		// Marshalling a map of strings cannot fail; keep the compiler honest.
		return json.RawMessage(`{"rawResponse":""}`)
	}
	return fallback
}
