package config

import (
	"talent-site-api/internal/domain"
	"talent-site-api/internal/infra/supabase"
	"talent-site-api/internal/repository"
	"talent-site-api/internal/service"
	"talent-site-api/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	SupabaseClient    domain.SupabaseClient
	LeadRepository    domain.LeadRepository
	ExtractionService domain.DocumentExtractor
	LeadService       domain.LeadService
}

// NewContainer creates a new dependency injection container.
// Leads go to Supabase when it is configured and to the log otherwise.
func NewContainer() (*Container, error) {
	config, err := NewConfig()
	if err != nil {
		return nil, err
	}
	appLogger := logger.NewLogger(config.GetLogLevel(), config.GetLogFormat())

	var (
		supabaseClient domain.SupabaseClient
		leadRepo       domain.LeadRepository
	)
	if config.GetSupabaseURL() != "" && config.GetSupabaseKey() != "" {
		supabaseClient = supabase.NewSupabaseClient(config, appLogger)
		if err := supabaseClient.Initialize(); err != nil {
			return nil, err
		}
		leadRepo = repository.NewSupabaseLeadRepository(supabaseClient, config.GetLeadsTable(), appLogger)
	} else {
		appLogger.Warn("Supabase is not configured, leads will only be logged")
		leadRepo = repository.NewLogLeadRepository(appLogger)
	}

	pdfExtractor := service.NewHeuristicPDFExtractor(service.NewPDFPageCounter(), appLogger)
	extractionService := service.NewExtractionService(service.NewWordConverter(appLogger), pdfExtractor, appLogger)

	return &Container{
		Config:            config,
		Logger:            appLogger,
		SupabaseClient:    supabaseClient,
		LeadRepository:    leadRepo,
		ExtractionService: extractionService,
		LeadService:       service.NewLeadService(leadRepo, appLogger),
	}, nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
