package tokenizer

import "strings"

// Fields splits a line on runs of whitespace (spaces, tabs, newlines and other
// Unicode spaces), dropping empty tokens.
// It always returns a non-nil slice.
func Fields(line string) []string {
	tokens := strings.Fields(line)
	if tokens == nil {
		return make([]string, 0) // Return empty slice instead of nil
	}
	return tokens
}
