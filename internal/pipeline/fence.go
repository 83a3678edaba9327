package pipeline

import "strings"

// fenceDelim opens and closes a fenced code region.
const fenceDelim = "```"

// fence is the two-state fenced-code handler. Outside a fence, a
// delimiter line opens the region and carries the trailing language
// label; inside, a delimiter line closes it. Interior lines are escaped
// for < and > and pass through verbatim; no other transform touches
// them. An unterminated fence simply stays open through end of input.
//
// When highlighting is configured the interior is buffered instead and
// rendered as one chroma block at fence close; consumed reports that the
// current line produced no output line of its own.
func (r *Renderer) fence(s *parseState, line string) (out string, consumed bool) {
	if s.lineEmpty {
		if s.inFence && r.highlightStyle != "" {
			s.fenceBuf = append(s.fenceBuf, line)
			return "", true
		}
		return line, false
	}

	if strings.HasPrefix(line, fenceDelim) {
		if !s.inFence {
			s.inFence = true
			s.fenceLang = strings.TrimSpace(line[len(fenceDelim):])
			if r.highlightStyle != "" {
				s.fenceBuf = s.fenceBuf[:0]
				return "", true
			}
			return `<pre><code class="language-` + s.fenceLang + `">`, false
		}

		s.inFence = false
		if r.highlightStyle != "" {
			s.emit(r.renderHighlighted(s))
			return "", true
		}
		return "</code></pre>", false
	}

	if s.inFence {
		if r.highlightStyle != "" {
			s.fenceBuf = append(s.fenceBuf, line)
			return "", true
		}
		return angleEscaper.Replace(line), false
	}
	return line, false
}
