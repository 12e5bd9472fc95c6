package service

import (
	"strings"
	"unicode/utf8"

	"talent-site-api/internal/domain"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	maxTitleChars   = 50
	maxExcerptChars = 200
	ellipsis        = "..."
)

// DeriveTitle picks the first heading, then the first paragraph (truncated),
// then a fixed placeholder.
func DeriveTitle(doc string) string {
	if heading := firstElementText(doc, isHeadingAtom); heading != "" {
		return heading
	}
	if para := firstElementText(doc, func(a atom.Atom) bool { return a == atom.P }); para != "" {
		return truncateWithEllipsis(para, maxTitleChars)
	}
	return domain.UntitledDocument
}

// DeriveExcerpt strips markup, collapses whitespace and truncates to 200 characters.
// It works on the rendered HTML, so DOCX and PDF uploads follow the same rule:
// h1-h6 text is left out whenever the document has any other text, and a
// document made only of headings falls back to the heading text.
func DeriveExcerpt(doc string) string {
	text := documentText(doc, true)
	if text == "" {
		text = documentText(doc, false)
	}
	return truncateWithEllipsis(text, maxExcerptChars)
}

func isHeadingAtom(a atom.Atom) bool {
	switch a {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

// firstElementText returns the text of the first matching element with non-empty text.
func firstElementText(doc string, match func(atom.Atom) bool) string {
	z := html.NewTokenizer(strings.NewReader(doc))

	var (
		capturing bool
		target    atom.Atom
		depth     int
		sb        strings.Builder
	)

	for {
		switch z.Next() {
		case html.ErrorToken:
			if capturing {
				return collapseWhitespace(sb.String())
			}
			return ""
		case html.StartTagToken:
			tok := z.Token()
			if !capturing && match(tok.DataAtom) {
				capturing, target, depth = true, tok.DataAtom, 1
				sb.Reset()
				continue
			}
			if capturing && tok.DataAtom == target {
				depth++
			}
		case html.EndTagToken:
			tok := z.Token()
			if !capturing || tok.DataAtom != target {
				continue
			}
			depth--
			if depth > 0 {
				continue
			}
			if text := collapseWhitespace(sb.String()); text != "" {
				return text
			}
			capturing = false
		case html.TextToken:
			if capturing {
				sb.Write(z.Text())
			}
		}
	}
}

// documentText concatenates all text nodes, optionally skipping heading content.
func documentText(doc string, skipHeadings bool) string {
	z := html.NewTokenizer(strings.NewReader(doc))

	var sb strings.Builder
	skipDepth := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			return collapseWhitespace(sb.String())
		case html.StartTagToken:
			tok := z.Token()
			if skippedAtom(tok.DataAtom, skipHeadings) {
				skipDepth++
			}
		case html.EndTagToken:
			tok := z.Token()
			if skippedAtom(tok.DataAtom, skipHeadings) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				sb.Write(z.Text())
			}
		}
	}
}

func skippedAtom(a atom.Atom, skipHeadings bool) bool {
	if a == atom.Script || a == atom.Style {
		return true
	}
	return skipHeadings && isHeadingAtom(a)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncateWithEllipsis(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + ellipsis
}
