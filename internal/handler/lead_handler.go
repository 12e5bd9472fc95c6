package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"talent-site-api/internal/domain"
)

const maxLeadBodyBytes = 64 << 10

// LeadHandler handles contact and demo-request form submissions
type LeadHandler struct {
	leadService domain.LeadService
	logger      domain.Logger
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService domain.LeadService, logger domain.Logger) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
		logger:      logger,
	}
}

type leadResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// SubmitContact handles POST /api/contact
func (h *LeadHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, domain.LeadKindContact)
}

// SubmitDemoRequest handles POST /api/demo-request
func (h *LeadHandler) SubmitDemoRequest(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, domain.LeadKindDemoRequest)
}

func (h *LeadHandler) submit(w http.ResponseWriter, r *http.Request, kind domain.LeadKind) {
	lead, err := decodeLead(http.MaxBytesReader(w, r.Body, maxLeadBodyBytes))
	if err != nil {
		h.logger.Debug("Invalid lead body", "kind", kind, "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	stored, err := h.leadService.Submit(r.Context(), kind, lead)
	if err != nil {
		h.logger.Error("Failed to submit lead", err, "kind", kind)
		writeError(w, http.StatusInternalServerError, "Failed to submit request")
		return
	}

	writeJSON(w, http.StatusOK, leadResponse{Success: true, ID: stored.ID})
}

// decodeLead reads exactly one JSON object from body.
func decodeLead(body io.Reader) (*domain.Lead, error) {
	dec := json.NewDecoder(body)

	var lead *domain.Lead
	if err := dec.Decode(&lead); err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, errors.New("lead body must be a JSON object")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after lead object")
	}
	return lead, nil
}
