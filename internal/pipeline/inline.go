package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// Precompiled inline patterns. Bold must run before italic: both use the
// asterisk delimiter and the double-asterisk form has to claim its match
// first.
var (
	codeSpanDouble = regexp.MustCompile("``(.+?)``")
	codeSpanSingle = regexp.MustCompile("`(.+?)`")
	boldPattern    = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern  = regexp.MustCompile(`\*([^*]+)\*`)
	deletedPattern = regexp.MustCompile(`~~([^~]+)~~`)
	linkPattern    = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	externalURL    = regexp.MustCompile(`^https?://`)
)

// maxInlinePasses bounds the rewrite loop per line. None of the inline
// replacements can re-match their own output, so the cap is only a guard
// against pathological input.
const maxInlinePasses = 512

// codePlaceholderFmt builds the per-line placeholder token for extracted
// code spans. NUL bytes cannot appear in markdown-significant positions,
// so no other transform can split a token.
const codePlaceholderFmt = "\x00code-span-%d\x00"

var angleEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// rewriteAll replaces every match of re on the line, one match at a time,
// until the pattern no longer matches or the iteration cap is reached.
func rewriteAll(re *regexp.Regexp, line string, repl func(groups []string) string) string {
	for range maxInlinePasses {
		loc := re.FindStringSubmatchIndex(line)
		if loc == nil {
			return line
		}
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = line[loc[2*i]:loc[2*i+1]]
			}
		}
		line = line[:loc[0]] + repl(groups) + line[loc[1]:]
	}
	return line
}

// extractCode pulls code spans out of the line before any emphasis
// pattern runs, double-backtick spans first so a single-backtick match
// cannot bite into them. Each span is replaced by a unique placeholder
// and its rendered <code> HTML is recorded for reinsertion.
func extractCode(s *parseState, line string) string {
	for _, re := range []*regexp.Regexp{codeSpanDouble, codeSpanSingle} {
		line = rewriteAll(re, line, func(g []string) string {
			key := fmt.Sprintf(codePlaceholderFmt, len(s.extracted))
			s.extracted = append(s.extracted, codeSpan{
				key:  key,
				html: "<code>" + angleEscaper.Replace(g[1]) + "</code>",
			})
			return key
		})
	}
	return line
}

// insertCode restores the rendered code spans and drains the placeholder
// table. Every placeholder is reinserted before the line is finalized.
func insertCode(s *parseState, line string) string {
	for _, span := range s.extracted {
		line = strings.ReplaceAll(line, span.key, span.html)
	}
	s.extracted = s.extracted[:0]
	return line
}

func bold(line string) string {
	return rewriteAll(boldPattern, line, func(g []string) string {
		return "<em>" + g[1] + "</em>"
	})
}

func italic(line string) string {
	return rewriteAll(italicPattern, line, func(g []string) string {
		return "<i>" + g[1] + "</i>"
	})
}

func deleted(line string) string {
	return rewriteAll(deletedPattern, line, func(g []string) string {
		return "<del>" + g[1] + "</del>"
	})
}

// link rewrites [label](url) to an anchor, resolving relative URLs
// against the configured base URL.
func (r *Renderer) link(line string) string {
	return rewriteAll(linkPattern, line, func(g []string) string {
		return `<a href="` + r.resolveURL(g[2]) + `">` + g[1] + "</a>"
	})
}

// resolveURL prefixes relative URLs with the base URL. External http(s)
// URLs and every URL in the no-base-URL configuration pass through
// unchanged.
func (r *Renderer) resolveURL(url string) string {
	if r.baseURL == "" || externalURL.MatchString(url) {
		return url
	}
	return r.baseURL + "/" + url
}
