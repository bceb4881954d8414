package fsdsl

import "strings"

// EscapeString makes s safe for embedding in a double-quoted literal of
// the target DSL. Backslashes are rewritten first; otherwise the
// backslashes introduced for quotes, newlines and carriage returns would
// be escaped a second time.
func EscapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	return s
}

// escapeScriptText prepares inline script source for embedding. Double
// quotes become apostrophes; newlines and backslashes stay as they are,
// keeping the script body readable.
func escapeScriptText(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}
