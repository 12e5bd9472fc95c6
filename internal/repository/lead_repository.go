package repository

import (
	"context"
	"fmt"
	"time"

	"talent-site-api/internal/domain"
)

// SupabaseLeadRepository stores leads in a Supabase table
type SupabaseLeadRepository struct {
	supabaseClient domain.SupabaseClient
	table          string
	logger         domain.Logger
}

// NewSupabaseLeadRepository creates a new Supabase lead repository
func NewSupabaseLeadRepository(supabaseClient domain.SupabaseClient, table string, logger domain.Logger) domain.LeadRepository {
	return &SupabaseLeadRepository{
		supabaseClient: supabaseClient,
		table:          table,
		logger:         logger,
	}
}

// Store inserts the lead as a new row
func (r *SupabaseLeadRepository) Store(ctx context.Context, lead *domain.Lead) error {
	client := r.supabaseClient.DB()
	if client == nil {
		return fmt.Errorf("supabase client not initialized")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	row := map[string]interface{}{
		"id":         lead.ID,
		"kind":       string(lead.Kind),
		"name":       lead.Name,
		"email":      lead.Email,
		"company":    lead.Company,
		"phone":      lead.Phone,
		"role":       lead.Role,
		"team_size":  lead.TeamSize,
		"message":    lead.Message,
		"source":     lead.Source,
		"created_at": lead.CreatedAt.Format(time.RFC3339),
	}

	if _, _, err := client.From(r.table).Insert(row, false, "", "minimal", "").Execute(); err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}

	r.logger.Debug("Lead stored", "table", r.table, "lead_id", lead.ID)
	return nil
}

// LogLeadRepository writes leads to the application log when no database is configured.
type LogLeadRepository struct {
	logger domain.Logger
}

// NewLogLeadRepository creates a log-only lead repository
func NewLogLeadRepository(logger domain.Logger) domain.LeadRepository {
	return &LogLeadRepository{logger: logger}
}

// Store logs the lead
func (r *LogLeadRepository) Store(ctx context.Context, lead *domain.Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.logger.Info("Lead received",
		"lead_id", lead.ID,
		"kind", lead.Kind,
		"name", lead.Name,
		"email", lead.Email,
		"company", lead.Company,
		"source", lead.Source,
	)
	return nil
}
