package pipeline

import (
	"regexp"
	"strings"
)

// noParagraphPattern recognizes lines whose rendered form is already a
// block-level construct; those never get wrapped in a paragraph.
var noParagraphPattern = regexp.MustCompile(`^<(?:h[1-6]|pre|ul|ol|li|img|figure|video|blockquote|div)`)

// List item patterns. Match priority is ordered, then asterisk, then
// dash; the target nesting depth derives from the leading indentation.
var (
	orderedItem  = regexp.MustCompile(`^(\s*)[0-9]+\.\s(.*)`)
	asteriskItem = regexp.MustCompile(`^(\s*)\*\s(.*)`)
	dashItem     = regexp.MustCompile(`^(\s*)-\s(.*)`)
)

// List tag markers kept on the open-list stack.
const (
	tagOrdered   = "ol"
	tagUnordered = "ul"
)

// Renderer converts normalized markdown body text into an HTML fragment.
// A Renderer carries configuration only; all parse state lives in a
// per-call value, so one Renderer may serve any number of sequential or
// concurrent Render calls.
type Renderer struct {
	baseURL        string
	highlightStyle string // empty = plain escaped fences
}

// NewRenderer creates a Renderer. baseURL, when non-empty, is prefixed
// to relative link/media URLs. highlightStyle, when non-empty, names the
// chroma style used to highlight fenced code; empty keeps the plain
// <pre><code> rendering.
func NewRenderer(baseURL, highlightStyle string) *Renderer {
	return &Renderer{baseURL: baseURL, highlightStyle: highlightStyle}
}

// codeSpan is one extracted inline code span, keyed by its placeholder.
type codeSpan struct {
	key  string
	html string
}

// parseState is the full mutable state of one Render call. It is
// constructed fresh per call and never shared.
type parseState struct {
	lines     []string   // output buffer, insertion order = visual order
	extracted []codeSpan // placeholder table, drained every line

	lineEmpty    bool
	inFence      bool
	inBlockquote bool
	inParagraph  bool

	fenceLang string
	fenceBuf  []string // raw fence interior, highlight mode only

	listStack []string // open list tags, LIFO
}

func newParseState() *parseState {
	return &parseState{}
}

// emit appends a synthetic line ahead of the current line's own text.
func (s *parseState) emit(line string) {
	s.lines = append(s.lines, line)
}

// lastLineEmpty reports whether the most recently emitted line is blank.
// An empty buffer counts as blank so the first content line can open a
// paragraph.
func (s *parseState) lastLineEmpty() bool {
	return len(s.lines) == 0 || s.lines[len(s.lines)-1] == ""
}

func (s *parseState) listDepth() int {
	return len(s.listStack)
}

func (s *parseState) popList() string {
	tag := s.listStack[len(s.listStack)-1]
	s.listStack = s.listStack[:len(s.listStack)-1]
	return tag
}

// Render runs the single forward pass over the body's lines. Handler
// order per line is fixed: fence first (suppressing everything else
// while inside), then the single-line detectors, the inline chain, and
// the stateful blockquote/list/paragraph handlers.
func (r *Renderer) Render(body string) string {
	s := newParseState()

	for _, line := range strings.Split(body, "\n") {
		s.lineEmpty = line == ""

		line, consumed := r.fence(s, line)
		if consumed {
			continue
		}

		if !s.inFence {
			line = heading(line)
			line = notice(line)
			line = r.media(line)

			line = cutMarker(line)
			if line == "" {
				// A blanked cut marker behaves like a blank line, so the
				// stateful handlers below close anything it interrupts.
				s.lineEmpty = true
			}
			line = extractCode(s, line)
			line = bold(line)
			line = italic(line)
			line = deleted(line)
			line = r.link(line)
			line = insertCode(s, line)

			line = blockquote(s, line)
			line = list(s, line)
			line = paragraph(s, line)
		}

		s.emit(line)
	}

	// An unterminated fence is tolerated; in highlight mode its buffered
	// interior still has to reach the output.
	if s.inFence && r.highlightStyle != "" && len(s.fenceBuf) > 0 {
		s.emit(r.renderHighlighted(s))
	}

	return strings.Join(s.lines, "\n")
}

// blockquote opens a quote container on the first "> " line, strips the
// prefix from quoted lines, and closes the container on the next blank
// line.
func blockquote(s *parseState, line string) string {
	if !s.lineEmpty && strings.HasPrefix(line, "> ") {
		if !s.inBlockquote {
			s.emit("<blockquote>")
			s.inBlockquote = true
		}
		line = line[2:]
	}

	if s.lineEmpty && s.inBlockquote {
		s.emit("</blockquote>")
		s.inBlockquote = false
	}
	return line
}

// list turns marker lines into <li> elements and keeps the open-list
// stack in step with the indentation-derived target depth. A deeper
// target pushes and opens a nested list; a shallower one closes the
// excess levels in LIFO order. A blank line closes everything.
func list(s *parseState, line string) string {
	candidates := []struct {
		re  *regexp.Regexp
		tag string
	}{
		{orderedItem, tagOrdered},
		{asteriskItem, tagUnordered},
		{dashItem, tagUnordered},
	}

	for _, c := range candidates {
		m := c.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		depth := len(m[1])/tabWidth + 1
		if depth > s.listDepth() {
			s.listStack = append(s.listStack, c.tag)
			s.emit("<" + c.tag + ">")
		}

		line = "<li>" + m[2] + "</li>"

		for depth < s.listDepth() {
			s.emit("</" + s.popList() + ">")
		}
		break
	}

	if s.lineEmpty {
		for s.listDepth() > 0 {
			s.emit("</" + s.popList() + ">")
		}
	}
	return line
}

// paragraph wraps runs of plain text. A paragraph opens when a non-empty
// line follows a blank one and is not already a block-level construct,
// and closes on the first blank line after.
func paragraph(s *parseState, line string) string {
	if s.lastLineEmpty() && !s.lineEmpty && !noParagraphPattern.MatchString(line) {
		s.emit("<p>")
		s.inParagraph = true
	}

	if s.lineEmpty && !s.lastLineEmpty() && s.inParagraph {
		s.emit("</p>")
		s.inParagraph = false
	}
	return line
}
