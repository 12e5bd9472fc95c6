package domain

import (
	"context"
	"time"
)

// LeadKind distinguishes the marketing forms that submit leads.
type LeadKind string

const (
	LeadKindContact     LeadKind = "contact"
	LeadKindDemoRequest LeadKind = "demo_request"
)

// Lead is a contact or demo request submitted from the website.
// Fields are passed through as received.
type Lead struct {
	ID        string    `json:"id"`
	Kind      LeadKind  `json:"kind"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role,omitempty"`
	TeamSize  string    `json:"team_size,omitempty"`
	Message   string    `json:"message,omitempty"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LeadRepository persists submitted leads.
type LeadRepository interface {
	Store(ctx context.Context, lead *Lead) error
}

// LeadService defines the use-case for form submissions.
type LeadService interface {
	Submit(ctx context.Context, kind LeadKind, lead *Lead) (*Lead, error)
}
