package service

import (
	"context"
	"time"

	"talent-site-api/internal/domain"
	apperrors "talent-site-api/pkg/errors"

	"github.com/google/uuid"
)

// LeadService records contact and demo requests
type LeadService struct {
	repo   domain.LeadRepository
	logger domain.Logger
	now    func() time.Time
}

// NewLeadService creates a new lead service
func NewLeadService(repo domain.LeadRepository, logger domain.Logger) *LeadService {
	return &LeadService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Submit stamps the lead with an ID, kind and creation time and stores it.
func (s *LeadService) Submit(ctx context.Context, kind domain.LeadKind, lead *domain.Lead) (*domain.Lead, error) {
	if lead == nil {
		return nil, apperrors.NewValidationError("Invalid request body")
	}

	stored := *lead
	stored.ID = uuid.NewString()
	stored.Kind = kind
	stored.CreatedAt = s.now().UTC()

	if err := s.repo.Store(ctx, &stored); err != nil {
		s.logger.Error("Failed to store lead", err, "kind", kind, "lead_id", stored.ID)
		return nil, apperrors.NewStorageError("Failed to submit request", err)
	}

	s.logger.Info("Lead submitted", "kind", kind, "lead_id", stored.ID)
	return &stored, nil
}
