package pipeline

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// renderHighlighted turns the buffered fence interior into a chroma
// highlighted HTML block and resets the buffer. chroma falls back to a
// plaintext lexer for unknown languages; if highlighting still fails the
// plain escaped rendering is used so fence content is never dropped.
func (r *Renderer) renderHighlighted(s *parseState) string {
	source := strings.Join(s.fenceBuf, "\n")
	s.fenceBuf = s.fenceBuf[:0]

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, source, s.fenceLang, "html", r.highlightStyle); err != nil {
		return `<pre><code class="language-` + s.fenceLang + `">` + "\n" +
			angleEscaper.Replace(source) + "\n</code></pre>"
	}
	return strings.TrimRight(buf.String(), "\n")
}
