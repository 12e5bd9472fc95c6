package service

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"talent-site-api/internal/domain"

	"github.com/nguyenthenguyen/docx"
)

const (
	wordprocessingNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	// markupCompatNS holds mc:AlternateContent. Word repeats text boxes in mc:Fallback.
	markupCompatNS   = "http://schemas.openxmlformats.org/markup-compatibility/2006"
)

// WordConverter renders Word packages as HTML. The package is opened with
// nguyenthenguyen/docx and word/document.xml is walked paragraph by paragraph.
type WordConverter struct {
	logger domain.Logger
}

// NewWordConverter creates a new converter
func NewWordConverter(logger domain.Logger) *WordConverter {
	return &WordConverter{logger: logger}
}

// ConvertToHTML converts a .docx payload to HTML blocks joined by newlines.
func (c *WordConverter) ConvertToHTML(data []byte) (string, error) {
	if len(data) == 0 {
		return "", domain.ErrEmptyDocument
	}

	r, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}
	defer r.Close()

	content := r.Editable().GetContent()
	if strings.TrimSpace(content) == "" {
		return "", domain.ErrDocumentXMLNotFound
	}

	out, err := renderDocumentXML(content)
	if err != nil {
		return "", err
	}
	c.logger.Debug("DOCX converted", "bytes", len(data), "html_bytes", len(out))
	return out, nil
}

// wordParagraph accumulates one w:p element.
type wordParagraph struct {
	style    string
	numbered bool
	body     strings.Builder
}

// wordRun accumulates one w:r element.
type wordRun struct {
	bold   bool
	italic bool
	text   strings.Builder
}

// flush renders the buffered text with line breaks as <br> and clears the buffer.
func (r *wordRun) flush() string {
	out := strings.ReplaceAll(r.html(), "\n", "<br>")
	r.text.Reset()
	return out
}

func (r *wordRun) html() string {
	if r.text.Len() == 0 {
		return ""
	}
	s := html.EscapeString(r.text.String())
	if r.italic {
		s = "<em>" + s + "</em>"
	}
	if r.bold {
		s = "<strong>" + s + "</strong>"
	}
	return s
}

type wordRenderer struct {
	blocks    []string
	listItems []string
}

func (w *wordRenderer) flushList() {
	if len(w.listItems) == 0 {
		return
	}
	var sb strings.Builder
	sb.WriteString("<ul>\n")
	for _, item := range w.listItems {
		sb.WriteString("<li>" + item + "</li>\n")
	}
	sb.WriteString("</ul>")
	w.blocks = append(w.blocks, sb.String())
	w.listItems = nil
}

func (w *wordRenderer) addParagraph(p *wordParagraph) {
	body := strings.TrimSpace(p.body.String())
	if body == "" {
		return
	}

	if level := docxHeadingLevel(p.style); level > 0 {
		w.flushList()
		w.blocks = append(w.blocks, fmt.Sprintf("<h%d>%s</h%d>", level, body, level))
		return
	}
	if p.numbered || strings.HasPrefix(strings.ToLower(p.style), "listparagraph") {
		w.listItems = append(w.listItems, body)
		return
	}
	w.flushList()
	w.blocks = append(w.blocks, "<p>"+body+"</p>")
}

// renderDocumentXML walks WordprocessingML and emits headings, paragraphs and lists.
// Paragraphs nested inside text boxes are folded into their parent paragraph.
func renderDocumentXML(content string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var (
		out           wordRenderer
		para          *wordParagraph
		run           *wordRun
		outerRuns     []*wordRun
		depth         int
		fallbackDepth int
		inText        bool
		inRPr         bool
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document.xml: %w", err)
		}

		if t, ok := tok.(xml.StartElement); ok && t.Name.Space == markupCompatNS && t.Name.Local == "Fallback" {
			fallbackDepth++
			continue
		}
		if t, ok := tok.(xml.EndElement); ok && t.Name.Space == markupCompatNS && t.Name.Local == "Fallback" {
			fallbackDepth--
			continue
		}
		if fallbackDepth > 0 {
			continue
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordprocessingNS {
				continue
			}
			switch t.Name.Local {
			case "p":
				depth++
				if depth == 1 {
					para = &wordParagraph{}
				}
			case "pStyle":
				if para != nil && depth == 1 {
					para.style = wordAttr(t, "val")
				}
			case "numPr":
				if para != nil {
					para.numbered = true
				}
			case "r":
				if para == nil {
					continue
				}
				// A run nested in a text box: emit what the outer run has so far.
				if run != nil {
					para.body.WriteString(run.flush())
					outerRuns = append(outerRuns, run)
				}
				run = &wordRun{}
			case "rPr":
				inRPr = true
			case "b":
				if run != nil && inRPr {
					run.bold = wordToggle(t)
				}
			case "i":
				if run != nil && inRPr {
					run.italic = wordToggle(t)
				}
			case "t":
				inText = true
			case "tab":
				if run != nil {
					run.text.WriteByte(' ')
				}
			case "br", "cr":
				if run != nil {
					run.text.WriteByte('\n')
				}
			}
		case xml.CharData:
			if inText && run != nil {
				run.text.Write(t)
			}
		case xml.EndElement:
			if t.Name.Space != wordprocessingNS {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "rPr":
				inRPr = false
			case "r":
				if run != nil && para != nil {
					para.body.WriteString(run.flush())
				}
				run = nil
				if n := len(outerRuns); n > 0 {
					run, outerRuns = outerRuns[n-1], outerRuns[:n-1]
				}
			case "p":
				depth--
				if depth == 0 && para != nil {
					out.addParagraph(para)
					para = nil
				}
			}
		}
	}
	out.flushList()

	return strings.Join(out.blocks, "\n"), nil
}

func wordAttr(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// wordToggle reads an on/off property such as <w:b/> or <w:b w:val="false"/>.
func wordToggle(el xml.StartElement) bool {
	switch strings.ToLower(wordAttr(el, "val")) {
	case "0", "false", "off", "none":
		return false
	}
	return true
}

// docxHeadingLevel maps a paragraph style id to a heading level, 0 for body text.
// e.g. "Heading1" -> 1, "Title" -> 1, "Subtitle" -> 2.
func docxHeadingLevel(style string) int {
	lower := strings.ToLower(strings.ReplaceAll(style, " ", ""))

	switch lower {
	case "title":
		return 1
	case "subtitle":
		return 2
	}

	if rest, ok := strings.CutPrefix(lower, "heading"); ok {
		if len(rest) == 1 && rest[0] >= '1' && rest[0] <= '6' {
			return int(rest[0] - '0')
		}
	}
	return 0
}
