// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"talent-site-api/internal/domain"
	apperrors "talent-site-api/pkg/errors"
)

const (
	// multipartMemory is the part of a multipart body kept in memory before spilling to disk.
	multipartMemory = 32 << 20
	// multipartOverhead leaves room for boundaries and headers on top of the file itself.
	multipartOverhead = 1 << 20

	processingFailedMessage = "Failed to process document"
)

// DocumentHandler handles document upload and conversion requests
type DocumentHandler struct {
	extractor   domain.DocumentExtractor
	maxFileSize int64
	logger      domain.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(extractor domain.DocumentExtractor, maxFileSize int64, logger domain.Logger) *DocumentHandler {
	return &DocumentHandler{
		extractor:   extractor,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// ConvertDocument accepts a multipart upload in the "file" field and returns
// the extracted HTML with a derived title and excerpt.
func (h *DocumentHandler) ConvertDocument(w http.ResponseWriter, r *http.Request) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		writeError(w, http.StatusBadRequest, "Request must be multipart/form-data")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusBadRequest, "File exceeds the maximum allowed size")
			return
		}
		h.logger.Debug("Failed to parse multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	// Reject unsupported extensions before reading the payload.
	if _, err := domain.DetectFormat(header.Filename); err != nil {
		writeError(w, http.StatusBadRequest, domain.UnsupportedFileTypeMessage)
		return
	}
	if header.Size > h.maxFileSize {
		writeError(w, http.StatusBadRequest, "File exceeds the maximum allowed size")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded file", err, "filename", header.Filename)
		writeError(w, http.StatusInternalServerError, processingFailedMessage)
		return
	}

	result, err := h.extractor.Extract(r.Context(), &domain.UploadedDocument{
		Filename: header.Filename,
		Data:     data,
	})
	if err != nil {
		h.writeExtractionError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.NewDocumentResponse(result))
}

func (h *DocumentHandler) writeExtractionError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperrors.As(err)
	if ok {
		switch appErr.Type {
		case apperrors.ErrorTypeUnsupportedFormat, apperrors.ErrorTypeValidation, apperrors.ErrorTypeConversionFailed:
			writeError(w, appErr.StatusCode, appErr.Message)
			return
		}
	}

	requestID, _ := GetRequestIDFromContext(r)
	h.logger.Error("Document processing failed", err, "request_id", requestID)
	writeError(w, http.StatusInternalServerError, processingFailedMessage)
}
