package service

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxHeadingChars = 100

var (
	blankLineRe = regexp.MustCompile(`\n[ \t\f\v]*\n`)

	// bulletSplitRe splits on bullet markers at the start of the text or after whitespace,
	// leaving hyphenated words intact.
	bulletSplitRe = regexp.MustCompile(`(?:^|\s+)[•-]\s*`)
)

// TextToHTML rebuilds block structure from plain text.
// Paragraphs are separated by blank lines. Short paragraphs without a trailing period
// become <h2>, paragraphs starting with a bullet become <ul>, the rest become <p>.
func TextToHTML(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var blocks []string
	for _, para := range blankLineRe.Split(text, -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		blocks = append(blocks, renderTextBlock(para))
	}
	return strings.Join(blocks, "\n")
}

func renderTextBlock(para string) string {
	if isHeadingText(para) {
		return "<h2>" + html.EscapeString(para) + "</h2>"
	}

	if strings.HasPrefix(para, "•") || strings.HasPrefix(para, "-") {
		items := bulletSplitRe.Split(para, -1)
		if len(items) > 1 {
			var sb strings.Builder
			sb.WriteString("<ul>\n")
			for _, item := range items {
				item = strings.TrimSpace(item)
				if item == "" {
					continue
				}
				sb.WriteString("<li>" + html.EscapeString(item) + "</li>\n")
			}
			sb.WriteString("</ul>")
			return sb.String()
		}
	}

	return "<p>" + html.EscapeString(para) + "</p>"
}

// isHeadingText reports whether a paragraph is short and not a sentence.
func isHeadingText(para string) bool {
	return utf8.RuneCountInString(para) < maxHeadingChars && !strings.HasSuffix(para, ".")
}
