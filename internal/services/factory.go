package services

import (
	"fmt"

	"storefront-api/internal/catalog"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	RecommendationService RecommendationService
	SearchService         SearchService
	NotificationService   NotificationService
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	SMTPConfig *SMTPConfig
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(c *catalog.Catalog, config *ServiceConfig) (*ServiceContainer, error) {
	if c == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}

	if config == nil {
		config = &ServiceConfig{}
	}

	mailer, err := NewMailer(config.SMTPConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create mailer: %w", err)
	}

	return &ServiceContainer{
		RecommendationService: NewRecommendationService(c),
		SearchService:         NewSearchService(c),
		NotificationService:   NewNotificationService(mailer),
	}, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.RecommendationService == nil {
		return fmt.Errorf("recommendation service is nil")
	}
	if sc.SearchService == nil {
		return fmt.Errorf("search service is nil")
	}
	if sc.NotificationService == nil {
		return fmt.Errorf("notification service is nil")
	}

	return nil
}

// Close performs cleanup for all services
func (sc *ServiceContainer) Close() error {
	return nil
}
