// Package pipeline implements the line-oriented Markdown-to-HTML engine.
//
// This package handles every stage between raw markdown text and a
// rendered HTML fragment:
//   - Text normalization (line endings, tab expansion, trailing blanks)
//   - Front matter splitting (the YAML decode itself lives with the caller)
//   - Single-line block detectors (headings, notices, media)
//   - The inline transform chain (code spans, bold, italic, delete, links)
//   - Cross-line block state (fences, blockquotes, nested lists, paragraphs)
//
// The engine makes a single forward pass over lines. Handler order is
// fixed and load-bearing: the fence handler runs first and suppresses
// everything else while a fence is open, code spans are extracted before
// any emphasis pattern runs, and bold runs before italic so the wider
// double-asterisk match is claimed first.
//
// Metadata decoding, page templating, and file I/O are handled by the
// root md2html package and the CLI. This separation keeps the engine a
// pure string transformation with no external effects.
package pipeline
