package pipeline

import (
	"errors"
	"strings"
)

// frontMatterDelim marks the start and end of a front matter block.
const frontMatterDelim = "---"

// ErrUnterminatedFrontMatter reports a front matter block that is opened
// but never closed by a second delimiter.
var ErrUnterminatedFrontMatter = errors.New("unterminated front matter block")

// SplitFrontMatter separates a leading front matter block from the
// document body. The metadata segment is returned raw; decoding it is
// the caller's concern. A document without a leading delimiter has no
// front matter and is returned whole as the body.
func SplitFrontMatter(content string) (meta, body string, err error) {
	if !strings.HasPrefix(content, frontMatterDelim) {
		return "", content, nil
	}

	parts := strings.SplitN(content, frontMatterDelim, 3)
	if len(parts) < 3 {
		return "", "", ErrUnterminatedFrontMatter
	}
	return parts[1], parts[2], nil
}
