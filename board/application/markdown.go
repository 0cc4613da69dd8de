package application

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

const snippetMaxLength = 200

// DescriptionResult contains the rendered forms of a post description.
type DescriptionResult struct {
	HTML    string
	Snippet string
}

// DescriptionRenderer converts markdown post descriptions for display.
type DescriptionRenderer interface {
	Render(description string) (*DescriptionResult, error)
}

type descriptionRenderer struct {
	renderer goldmark.Markdown
}

// NewDescriptionRenderer builds the goldmark-backed renderer used for
// post cards. Raw HTML in descriptions is escaped, not passed through.
func NewDescriptionRenderer() DescriptionRenderer {
	renderer := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Strikethrough,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	return &descriptionRenderer{
		renderer: renderer,
	}
}

func (r *descriptionRenderer) Render(description string) (*DescriptionResult, error) {
	var buf bytes.Buffer
	if err := r.renderer.Convert([]byte(description), &buf); err != nil {
		return nil, fmt.Errorf("failed to convert description to HTML: %w", err)
	}

	return &DescriptionResult{
		HTML:    buf.String(),
		Snippet: extractSnippet(description),
	}, nil
}

// extractSnippet returns the first paragraph of plain text, truncated at a
// word boundary.
func extractSnippet(description string) string {
	var paragraphLines []string
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(paragraphLines) > 0 {
				break
			}
			continue
		}
		// Skip headings and images when picking snippet text
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "![") {
			continue
		}
		paragraphLines = append(paragraphLines, line)
	}

	snippet := strings.Join(paragraphLines, " ")
	if len(snippet) <= snippetMaxLength {
		return snippet
	}

	cut := strings.LastIndex(snippet[:snippetMaxLength], " ")
	if cut <= 0 {
		// No word boundary: back up to a rune boundary so multi-byte
		// text is not split mid-rune
		cut = snippetMaxLength
		for cut > 0 && !utf8.RuneStart(snippet[cut]) {
			cut--
		}
	}
	return snippet[:cut] + "…"
}
