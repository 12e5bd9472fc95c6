package service

import (
	"context"
	"time"

	"talent-site-api/internal/domain"
	apperrors "talent-site-api/pkg/errors"

	"github.com/microcosm-cc/bluemonday"
)

// ConversionFailedMessage is reported when the Word converter fails.
const ConversionFailedMessage = "Failed to convert document"

// ExtractionService implements the document ingestion pipeline
type ExtractionService struct {
	docx   domain.DocxConverter
	pdf    domain.PDFTextExtractor
	policy *bluemonday.Policy
	logger domain.Logger
}

// NewExtractionService creates a new extraction service
func NewExtractionService(docx domain.DocxConverter, pdf domain.PDFTextExtractor, logger domain.Logger) *ExtractionService {
	return &ExtractionService{
		docx:   docx,
		pdf:    pdf,
		policy: bluemonday.UGCPolicy(),
		logger: logger,
	}
}

// Extract dispatches on the filename extension and derives title and excerpt
// from the produced HTML. PDF extraction never fails; degraded results are returned
// as content.
func (s *ExtractionService) Extract(ctx context.Context, doc *domain.UploadedDocument) (*domain.ExtractionResult, error) {
	if doc == nil {
		return nil, apperrors.NewValidationError("No file provided")
	}

	format, err := domain.DetectFormat(doc.Filename)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewInternalError("request cancelled", err)
	}

	start := time.Now()
	var content string
	switch format {
	case domain.FormatDOCX, domain.FormatDOC:
		content, err = s.docx.ConvertToHTML(doc.Data)
		if err != nil {
			s.logger.Error("Word conversion failed", err, "filename", doc.Filename, "format", format)
			return nil, apperrors.NewConversionError(ConversionFailedMessage, err)
		}
	case domain.FormatPDF:
		content = TextToHTML(s.extractPDFText(doc))
	}

	content = s.policy.Sanitize(content)
	result := &domain.ExtractionResult{
		HTML:    content,
		Title:   DeriveTitle(content),
		Excerpt: DeriveExcerpt(content),
	}

	s.logger.Info("Document extracted",
		"filename", doc.Filename,
		"format", format,
		"size", len(doc.Data),
		"html_bytes", len(content),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

func (s *ExtractionService) extractPDFText(doc *domain.UploadedDocument) string {
	text, err := s.pdf.ExtractText(doc.Data)
	if err == nil {
		return text
	}

	if appErr, ok := apperrors.As(err); ok && appErr.Type == apperrors.ErrorTypeExtractionDegraded {
		s.logger.Warn("PDF extraction degraded", "filename", doc.Filename, "reason", appErr.Message, "cause", appErr.Cause)
		return appErr.Message
	}

	s.logger.Error("PDF extraction failed", err, "filename", doc.Filename)
	return ParsingFailedMessage
}
