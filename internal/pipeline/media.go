package pipeline

import (
	"path"
	"regexp"
	"strconv"
	"strings"
)

// mediaPattern matches image syntax with an optional ?key=value&key=value
// attribute suffix on the URL.
var mediaPattern = regexp.MustCompile(`^!\[([^\]]+)\]\(([^)?]+)\??([^)]*)\)`)

// File extensions that select the output tag.
var (
	imageExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true}
	videoExtensions = map[string]bool{".mp4": true, ".m4v": true}
)

// Layout classes selected by the align attribute.
const (
	alignCenter = "align-center"
	alignLeft   = "align-left"
	alignRight  = "align-right"
)

// mediaAttrs is the typed attribute set parsed from the media
// mini-syntax. Unknown keys and malformed values are dropped.
type mediaAttrs struct {
	width  string
	height string
	align  string

	autoplay bool
	controls bool
	loop     bool
	muted    bool

	preloadNone bool
	poster      string
}

// parseMediaAttrs decodes a ?key=value&key=value suffix. Unrecognized
// keys are ignored, as are resize values that are not decimal integers.
func parseMediaAttrs(query string) mediaAttrs {
	attrs := mediaAttrs{align: alignCenter}
	if query == "" {
		return attrs
	}

	for _, pair := range strings.Split(query, "&") {
		key, value, _ := strings.Cut(pair, "=")
		switch key {
		case "resize":
			width, height, both := strings.Cut(value, ",")
			if both {
				if isDecimal(width) && isDecimal(height) {
					attrs.width = width
					attrs.height = height
				}
			} else if isDecimal(width) {
				// A single resize value constrains height only.
				attrs.height = width
			}
		case "align":
			switch strings.ToLower(value) {
			case "l", "left":
				attrs.align = alignLeft
			case "r", "right":
				attrs.align = alignRight
			}
		case "autoplay":
			attrs.autoplay = true
		case "controls":
			attrs.controls = true
		case "loop":
			attrs.loop = true
		case "muted":
			attrs.muted = true
		case "preload-poster":
			attrs.preloadNone = true
			attrs.poster = value
		}
	}
	return attrs
}

func isDecimal(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil && s != ""
}

// attrList renders the HTML attribute strings in emission order. The
// poster URL goes through the same base-URL resolution as media sources.
func (a mediaAttrs) attrList(resolve func(string) string) []string {
	var out []string
	if a.height != "" {
		out = append(out, `height="`+a.height+`"`)
	}
	if a.width != "" {
		out = append(out, `width="`+a.width+`"`)
	}
	if a.autoplay {
		out = append(out, "autoplay")
	}
	if a.controls {
		out = append(out, "controls")
	}
	if a.loop {
		out = append(out, "loop")
	}
	if a.muted {
		out = append(out, "muted")
	}
	if a.preloadNone {
		out = append(out, `preload="none"`)
		if a.poster != "" {
			out = append(out, `poster="`+resolve(a.poster)+`"`)
		}
	}
	return out
}

// media rewrites an image/video line to a <figure> wrapping an <img> or
// <video> element, chosen by file extension. Lines with an unrecognized
// extension pass through unchanged.
func (r *Renderer) media(line string) string {
	m := mediaPattern.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	alt, src, query := m[1], m[2], m[3]
	src = r.resolveURL(src)
	attrs := parseMediaAttrs(query)

	ext := strings.ToLower(path.Ext(src))
	switch {
	case imageExtensions[ext]:
		list := append(attrs.attrList(r.resolveURL), `loading="lazy"`)
		return `<figure class="` + attrs.align + `"><img src="` + src +
			`" alt="` + alt + `" ` + strings.Join(list, " ") + `></figure>`

	case videoExtensions[ext]:
		list := attrs.attrList(r.resolveURL)
		if attrs.autoplay {
			// Mobile browsers refuse inline autoplay without this.
			list = append(list, "playsinline")
		}
		return `<figure class="` + attrs.align + `"><video ` + strings.Join(list, " ") +
			`><source src="` + src + `" alt="` + alt + `" type="video/` + ext[1:] +
			`"></video></figure>`
	}
	return line
}
