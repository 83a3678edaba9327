package md2html

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-md2html/internal/pipeline"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Converter turns markdown documents into HTML fragments. Create one
// with NewConverter; a Converter holds configuration only and is safe
// for concurrent use.
type Converter struct {
	cfg      converterConfig
	renderer *pipeline.Renderer
}

// Result is the outcome of one conversion.
type Result struct {
	// HTML is the rendered fragment, lines joined by newlines.
	HTML string

	// Metadata is the mapping decoded from the front matter block.
	// Empty, never nil, when the document has no front matter.
	Metadata map[string]any
}

// NewConverter creates a Converter. Use options to customize behavior
// (e.g. WithBaseURL, WithCodeHighlighting).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	c.renderer = pipeline.NewRenderer(c.cfg.baseURL, c.cfg.highlightStyle)
	return c
}

// Convert renders a markdown document. The full parse state lives inside
// this call, so Convert is safely repeatable and concurrent on one
// Converter. The context is checked between pipeline stages; rendering
// itself is a bounded pure string transformation.
func (c *Converter) Convert(ctx context.Context, markdown string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content := pipeline.Normalize(markdown)

	meta, body, err := pipeline.SplitFrontMatter(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}

	metadata := map[string]any{}
	if strings.TrimSpace(meta) != "" {
		if err := yamlutil.Unmarshal([]byte(meta), &metadata); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Result{
		HTML:     c.renderer.Render(body),
		Metadata: metadata,
	}, nil
}
