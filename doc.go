// Package md2html converts a constrained markdown dialect to HTML.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv := md2html.NewConverter()
//
//	result, err := conv.Convert(ctx, "# Hello\n\nWorld")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.HTML)
//
// The result carries the rendered HTML fragment and the metadata mapping
// decoded from a leading YAML front matter block (empty when the
// document has none).
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Text normalization (line endings, tab expansion, trailing blanks)
//  2. Front matter splitting and YAML decoding
//  3. Line-oriented rendering: fenced code, headings, notices, media,
//     inline emphasis with code-span protection, blockquotes, nested
//     lists, and paragraph wrapping
//
// The dialect is deliberately small. It is not CommonMark: inline
// emphasis nests one level, there are no tables, and block structure is
// resolved line by line in a single forward pass.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := md2html.NewConverter(
//	    md2html.WithBaseURL("https://cdn.example"),
//	    md2html.WithCodeHighlighting("monokai"),
//	)
//
// WithBaseURL prefixes relative link, image, video, and poster URLs.
// WithCodeHighlighting renders fenced code through chroma instead of the
// default escaped <pre><code> block.
//
// # Media Attributes
//
// Image and video URLs accept a ?key=value&key=value suffix:
//
//	![diagram](arch.png?resize=640,480&align=left)
//	![demo](clip.mp4?autoplay&muted&preload-poster=cover.jpg)
//
// Recognized keys are resize, align, autoplay, controls, loop, muted,
// and preload-poster. Unknown keys are ignored.
//
// # Concurrency
//
// A Converter carries configuration only; every Convert call owns its
// full parse state, so one Converter is safe for concurrent use. For
// batch work, ConverterPool bounds the number of in-flight conversions.
package md2html
