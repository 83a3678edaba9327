package md2html

import "strings"

// DefaultHighlightStyle is the chroma style used when code highlighting
// is enabled without naming one.
const DefaultHighlightStyle = "github"

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	baseURL        string
	highlightStyle string
}

// WithBaseURL sets the base URL prefixed to relative link, image, video,
// and poster URLs. External http(s) URLs are never rewritten. A trailing
// slash is trimmed so the renderer can join with exactly one separator.
func WithBaseURL(url string) Option {
	return func(c *Converter) {
		c.cfg.baseURL = strings.TrimRight(url, "/")
	}
}

// WithCodeHighlighting renders fenced code regions through chroma using
// the named style. An empty style selects DefaultHighlightStyle. Without
// this option fences render as plain escaped <pre><code> blocks.
func WithCodeHighlighting(style string) Option {
	return func(c *Converter) {
		if style == "" {
			style = DefaultHighlightStyle
		}
		c.cfg.highlightStyle = style
	}
}
