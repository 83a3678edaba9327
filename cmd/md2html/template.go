package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Placeholders replaced when embedding the rendered fragment in a page.
const (
	bodyPlaceholder  = "#### BODY ####"
	titlePlaceholder = "#### TITLE ####"
)

// defaultPageTitle is used when the front matter carries no title.
const defaultPageTitle = "Document"

// ErrTemplateNoBody reports a page template without a body placeholder.
var ErrTemplateNoBody = errors.New("template missing '" + bodyPlaceholder + "' placeholder")

// defaultTemplate wraps the rendered fragment in a complete HTML5 document.
const defaultTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>` + titlePlaceholder + `</title>
</head>
<body>
` + bodyPlaceholder + `
</body>
</html>`

// loadTemplate reads a page template file and verifies it can receive a
// body. An empty path selects the built-in skeleton.
func loadTemplate(path string) (string, error) {
	if path == "" {
		return defaultTemplate, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- template path is user-provided
	if err != nil {
		return "", fmt.Errorf("reading template file: %w", err)
	}
	tmpl := string(data)
	if !strings.Contains(tmpl, bodyPlaceholder) {
		return "", fmt.Errorf("%w: %s", ErrTemplateNoBody, path)
	}
	return tmpl, nil
}

// renderPage embeds the rendered fragment and page title into the
// template. The title comes from the document's front matter when it
// carries a scalar "title" key.
func renderPage(tmpl, body string, metadata map[string]any) string {
	title := defaultPageTitle
	if v, ok := metadata["title"].(string); ok && v != "" {
		title = v
	}

	page := strings.ReplaceAll(tmpl, titlePlaceholder, title)
	return strings.ReplaceAll(page, bodyPlaceholder, body)
}
