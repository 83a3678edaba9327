package pipeline

import "strings"

// tabWidth is the fixed expansion width for horizontal tabs. List depth
// detection divides leading spaces by the same width.
const tabWidth = 4

// Normalize standardizes raw markdown text for the line renderer.
// It converts all line-ending variants to LF, expands tabs to spaces,
// and appends two trailing newlines so that any block still open at the
// end of input (list, blockquote, paragraph) is force-closed by the
// blank-line handling in the renderer.
func Normalize(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\t", strings.Repeat(" ", tabWidth))
	return content + "\n\n"
}
