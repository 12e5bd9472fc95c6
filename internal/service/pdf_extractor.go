package service

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"talent-site-api/internal/domain"
	apperrors "talent-site-api/pkg/errors"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"
)

// Scan windows and thresholds for the heuristic PDF extractor.
const (
	pdfPrimaryWindow     = 50000
	pdfSecondaryWindow   = 10000
	pdfMinTextLength     = 100
	pdfSecondaryMaxChars = 5000
)

// ParsingFailedMessage is returned as content when even the fallback scan fails.
const ParsingFailedMessage = "PDF parsing failed. The file may be corrupted, encrypted or saved with an unsupported encoding. Please try uploading a DOCX version of this document."

var (
	// pdfStringLiteralRe matches a parenthesized PDF string literal, skipping escaped characters.
	pdfStringLiteralRe = regexp.MustCompile(`(?s)\((?:\\.|[^\\()])*\)`)

	// printableRunRe matches runs of word characters, punctuation and common symbols.
	printableRunRe = regexp.MustCompile(`[A-Za-z0-9_.,;:!?'"()\[\]@#$%&*+=/\-]{4,}`)
)

// LimitedExtractionMessage is the degraded content for PDFs that yield too little text.
func LimitedExtractionMessage(pageCount int) string {
	return fmt.Sprintf("This PDF document has %d page(s), but text extraction was limited. "+
		"It may contain scanned images, embedded fonts or restricted permissions. "+
		"Please upload a DOCX version for best results.", pageCount)
}

// PDFPageCounter reads the page tree of a PDF with ledongthuc/pdf.
type PDFPageCounter struct{}

// NewPDFPageCounter creates a new page counter
func NewPDFPageCounter() *PDFPageCounter {
	return &PDFPageCounter{}
}

// CountPages returns the number of pages declared by the document catalog.
// The pdf package panics on some malformed inputs; those panics become errors.
func (c *PDFPageCounter) CountPages(data []byte) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	return reader.NumPage(), nil
}

// HeuristicPDFExtractor recovers text from PDF bytes without parsing content streams.
// It looks for string literals in a bounded prefix of the file and falls back to
// printable character runs. Results are best-effort.
type HeuristicPDFExtractor struct {
	pages  domain.PageCounter
	logger domain.Logger
}

// NewHeuristicPDFExtractor creates a new heuristic extractor
func NewHeuristicPDFExtractor(pages domain.PageCounter, logger domain.Logger) *HeuristicPDFExtractor {
	return &HeuristicPDFExtractor{
		pages:  pages,
		logger: logger,
	}
}

// ExtractText returns the recovered text. A degraded error carries the placeholder
// content in its Message; any other failure has already been absorbed by the fallback.
func (e *HeuristicPDFExtractor) ExtractText(data []byte) (string, error) {
	text, err := e.extractPrimary(data)
	if err == nil || apperrors.IsType(err, apperrors.ErrorTypeExtractionDegraded) {
		return text, err
	}

	e.logger.Warn("PDF extraction failed, using fallback scan", "error", err, "size", len(data))
	return e.extractFallback(data)
}

func (e *HeuristicPDFExtractor) extractPrimary(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("pdf extraction panic: %v", r)
		}
	}()

	pageCount, err := e.pages.CountPages(data)
	if err != nil {
		return "", err
	}

	window, err := decodeLatin1(prefix(data, pdfPrimaryWindow))
	if err != nil {
		return "", err
	}

	text = joinStringLiterals(window)
	if utf8.RuneCountInString(text) < pdfMinTextLength {
		e.logger.Debug("PDF string literals below threshold, scanning printable runs", "chars", utf8.RuneCountInString(text))
		text = joinPrintableRuns(window)
	}
	if utf8.RuneCountInString(text) < pdfMinTextLength {
		return "", apperrors.NewExtractionDegradedError(LimitedExtractionMessage(pageCount), nil)
	}
	return text, nil
}

func (e *HeuristicPDFExtractor) extractFallback(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", apperrors.NewExtractionDegradedError(ParsingFailedMessage, fmt.Errorf("fallback scan panic: %v", r))
		}
	}()

	window, err := decodeLatin1(prefix(data, pdfSecondaryWindow))
	if err != nil {
		return "", apperrors.NewExtractionDegradedError(ParsingFailedMessage, err)
	}

	text = truncateRunes(joinPrintableRuns(window), pdfSecondaryMaxChars)
	if strings.TrimSpace(text) == "" {
		return "", apperrors.NewExtractionDegradedError(ParsingFailedMessage, nil)
	}
	return text, nil
}

// joinStringLiterals decodes every parenthesized literal and joins them with spaces.
func joinStringLiterals(window string) string {
	matches := pdfStringLiteralRe.FindAllString(window, -1)
	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		decoded := DecodePDFString(m[1 : len(m)-1])
		if decoded == "" {
			continue
		}
		parts = append(parts, decoded)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func joinPrintableRuns(window string) string {
	return strings.Join(printableRunRe.FindAllString(window, -1), " ")
}

// DecodePDFString reverses PDF literal string escapes in a single pass, so every
// escape sequence is decoded exactly once: octal codes, \\, \( and \), then \n, \r, \t.
// A backslash before a line break is a continuation and is dropped with the break.
func DecodePDFString(raw string) string {
	runes := []rune(raw)
	var sb strings.Builder
	sb.Grow(len(raw))

	for i := 0; i < len(runes); i++ {
		if runes[i] != '\\' || i+1 >= len(runes) {
			sb.WriteRune(runes[i])
			continue
		}
		i++
		switch c := runes[i]; {
		case c >= '0' && c <= '7':
			val := int(c - '0')
			for n := 1; n < 3 && i+1 < len(runes) && runes[i+1] >= '0' && runes[i+1] <= '7'; n++ {
				i++
				val = val*8 + int(runes[i]-'0')
			}
			sb.WriteRune(rune(val & 0xFF))
		case c == '\\', c == '(', c == ')':
			sb.WriteRune(c)
		case c == 'n':
			sb.WriteByte('\n')
		case c == 'r':
			sb.WriteByte('\r')
		case c == 't':
			sb.WriteByte('\t')
		case c == 'b':
			sb.WriteByte('\b')
		case c == 'f':
			sb.WriteByte('\f')
		case c == '\n':
		case c == '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
		default:
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// decodeLatin1 maps each byte to the code point of the same value.
func decodeLatin1(b []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("failed to decode PDF bytes: %w", err)
	}
	return string(out), nil
}

func prefix(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
