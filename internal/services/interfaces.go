package services

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront-api/internal/models"
)

// RecommendationService defines the interface for product recommendations
type RecommendationService interface {
	// Recommend returns products similar to productID, or featured products
	// when productID is nil. The limit is clamped to [MinRecommendationLimit,
	// MaxRecommendationLimit]. An unknown productID yields an empty slice.
	Recommend(ctx context.Context, productID *int, limit int) []models.Product

	// Featured returns the first limit products in catalog order
	Featured(ctx context.Context, limit int) []models.Product

	// Similar returns products sharing the category of productID
	Similar(ctx context.Context, productID int, limit int) []models.Product
}

// SearchService defines the interface for catalog search
type SearchService interface {
	// Search filters the catalog and orders the survivors by filters.Sort.
	// No matches is an empty slice, not an error.
	Search(ctx context.Context, filters *SearchFilters) ([]models.Product, error)
}

// NotificationService defines the interface for customer notifications
type NotificationService interface {
	SendOrderConfirmation(ctx context.Context, req *models.OrderConfirmationRequest) (*models.NotificationResult, error)
	SendShippingUpdate(ctx context.Context, req *models.ShippingUpdateRequest) (*models.NotificationResult, error)
}

// Search service types

// SearchFilters holds the optional search predicates.
// Zero values mean the predicate is absent.
type SearchFilters struct {
	Query    string           `json:"q,omitempty"`
	Category string           `json:"category,omitempty"`
	MinPrice *decimal.Decimal `json:"minPrice,omitempty"`
	MaxPrice *decimal.Decimal `json:"maxPrice,omitempty"`
	Sort     models.SortKey   `json:"sort"`
}
