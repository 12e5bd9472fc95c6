package domain

import (
	"context"
	"path/filepath"
	"strings"

	apperrors "talent-site-api/pkg/errors"
)

// Format identifies the container format of an uploaded document.
type Format string

const (
	FormatDOCX Format = "docx"
	FormatDOC  Format = "doc"
	FormatPDF  Format = "pdf"
)

// UnsupportedFileTypeMessage is the user-facing message for the extension gate.
const UnsupportedFileTypeMessage = "Unsupported file type. Only .docx, .doc and .pdf files are supported"

// UntitledDocument is used when no heading or paragraph can supply a title.
const UntitledDocument = "Untitled Document"

// UploadedDocument is the raw payload of one upload. It lives for a single request.
type UploadedDocument struct {
	Filename string
	Data     []byte
}

// ExtractionResult is the normalized output of the ingestion pipeline.
// HTML is always set, possibly to a human-readable placeholder.
type ExtractionResult struct {
	HTML    string `json:"content"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
}

// DocumentResponse is the payload returned by POST /api/documents.
type DocumentResponse struct {
	Success bool   `json:"success"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt"`
}

// NewDocumentResponse builds the success payload for a result.
func NewDocumentResponse(result *ExtractionResult) DocumentResponse {
	return DocumentResponse{
		Success: true,
		Title:   result.Title,
		Content: result.HTML,
		Excerpt: result.Excerpt,
	}
}

// DetectFormat selects the extraction strategy from the filename extension only.
// Magic bytes are not inspected, so a renamed file is routed by its new name.
func DetectFormat(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	switch ext {
	case ".docx":
		return FormatDOCX, nil
	case ".doc":
		return FormatDOC, nil
	case ".pdf":
		return FormatPDF, nil
	default:
		return "", apperrors.NewUnsupportedFormatError(UnsupportedFileTypeMessage, filename)
	}
}

// DocumentExtractor turns one upload into an ExtractionResult.
type DocumentExtractor interface {
	Extract(ctx context.Context, doc *UploadedDocument) (*ExtractionResult, error)
}

// DocxConverter produces HTML from a Word package.
type DocxConverter interface {
	ConvertToHTML(data []byte) (string, error)
}

// PDFTextExtractor recovers plain text from raw PDF bytes.
// An ErrorTypeExtractionDegraded error carries placeholder text in its Message.
type PDFTextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// PageCounter reads the page count from a PDF container.
type PageCounter interface {
	CountPages(data []byte) (int, error)
}
