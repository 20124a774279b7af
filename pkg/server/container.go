package server

import (
	"context"
	"fmt"
	"time"

	"storefront-api/internal/catalog"
	"storefront-api/internal/config"
	"storefront-api/internal/services"
	"storefront-api/internal/tracing"
)

// Container holds all application dependencies
type Container struct {
	Config                *config.Config
	Catalog               *catalog.Catalog
	RecommendationService services.RecommendationService
	SearchService         services.SearchService
	NotificationService   services.NotificationService

	// Internal dependencies
	services        *services.ServiceContainer
	shutdownTracing func(context.Context) error
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	shutdownTracing, err := tracing.Setup(tracing.Config{
		ServiceName: cfg.ServiceName,
		Exporter:    cfg.Tracing.Exporter,
		Synchronous: config.IsServerlessMode(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up tracing: %w", err)
	}

	cat := catalog.Default()

	serviceConfig := &services.ServiceConfig{}
	if cfg.SMTP.Host != "" {
		serviceConfig.SMTPConfig = &services.SMTPConfig{
			Host:      cfg.SMTP.Host,
			Port:      cfg.SMTP.Port,
			Username:  cfg.SMTP.Username,
			Password:  cfg.SMTP.Password,
			FromEmail: cfg.SMTP.From,
			FromName:  cfg.SMTP.FromName,
		}
	}

	// Initialize services
	serviceContainer, err := services.NewServiceContainer(cat, serviceConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	if err := serviceContainer.Validate(); err != nil {
		return nil, fmt.Errorf("invalid service container: %w", err)
	}

	container := &Container{
		Config:                cfg,
		Catalog:               cat,
		RecommendationService: serviceContainer.RecommendationService,
		SearchService:         serviceContainer.SearchService,
		NotificationService:   serviceContainer.NotificationService,
		services:              serviceContainer,
		shutdownTracing:       shutdownTracing,
	}

	return container, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.services != nil {
		if err := c.services.Close(); err != nil {
			return fmt.Errorf("failed to close services: %w", err)
		}
	}

	if c.shutdownTracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.shutdownTracing(ctx); err != nil {
			return fmt.Errorf("failed to flush traces: %w", err)
		}
	}

	return nil
}
