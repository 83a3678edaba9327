package md2html

import "errors"

// Sentinel errors for library operations.
var (
	// ErrFrontMatter reports a front matter block that is present but
	// cannot be decoded: an unterminated delimiter or invalid YAML.
	// Absent front matter is not an error.
	ErrFrontMatter = errors.New("front matter decode failed")
)
