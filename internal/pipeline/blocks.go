package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// Single-line block patterns, all anchored at line start.
var (
	headingPattern = regexp.MustCompile(`^(#+)\s(.+)`)
	noticePattern  = regexp.MustCompile(`^(!+)\s(.+)`)
)

// maxHeadingLevel clamps heading depth; HTML stops at <h6>.
const maxHeadingLevel = 6

// heading rewrites an ATX-style heading line. The heading level is the
// length of the # run, clamped to 6.
func heading(line string) string {
	m := headingPattern.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	level := len(m[1])
	if level > maxHeadingLevel {
		level = maxHeadingLevel
	}
	return fmt.Sprintf("<h%d>%s</h%d>", level, m[2], level)
}

// noticeClasses maps the length of the ! run to a severity color class.
// Runs outside this table are not notices and pass through.
var noticeClasses = map[int]string{
	1: "yellow", // warning
	2: "red",    // error
	3: "blue",   // info
	4: "green",  // success
}

// notice rewrites a callout line (one to four leading ! characters) to a
// styled container.
func notice(line string) string {
	m := noticePattern.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	color, ok := noticeClasses[len(m[1])]
	if !ok {
		return line
	}
	return `<div class="notices ` + color + `">` + m[2] + "</div>"
}

// cutMarker blanks a summary separator line so it never reaches the
// rendered output.
func cutMarker(line string) string {
	switch strings.ToLower(line) {
	case "===", "<!-- more --!>":
		return ""
	}
	return line
}
