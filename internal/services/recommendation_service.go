package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"storefront-api/internal/catalog"
	"storefront-api/internal/models"
	"storefront-api/internal/tracing"
)

const (
	// DefaultRecommendationLimit is used when the caller does not pass a limit
	DefaultRecommendationLimit = 4
	// MinRecommendationLimit is the smallest number of products returned
	MinRecommendationLimit = 1
	// MaxRecommendationLimit is the largest number of products returned
	MaxRecommendationLimit = 20
)

// recommendationService implements the RecommendationService interface
type recommendationService struct {
	catalog *catalog.Catalog
}

// NewRecommendationService creates a new recommendation service instance
func NewRecommendationService(c *catalog.Catalog) RecommendationService {
	return &recommendationService{
		catalog: c,
	}
}

// ClampLimit bounds a requested limit to [MinRecommendationLimit, MaxRecommendationLimit]
func ClampLimit(limit int) int {
	if limit < MinRecommendationLimit {
		return MinRecommendationLimit
	}
	if limit > MaxRecommendationLimit {
		return MaxRecommendationLimit
	}
	return limit
}

// Recommend returns similar products, or featured products without a productID
func (s *recommendationService) Recommend(ctx context.Context, productID *int, limit int) []models.Product {
	ctx, span := tracing.Start(ctx, "recommendations.calculate",
		attribute.Int("recommendations.limit", ClampLimit(limit)),
	)
	defer span.End()

	var results []models.Product
	if productID == nil {
		span.SetAttributes(attribute.String("recommendations.mode", "featured"))
		results = s.Featured(ctx, limit)
	} else {
		span.SetAttributes(
			attribute.String("recommendations.mode", "similar"),
			attribute.Int("recommendations.product_id", *productID),
		)
		results = s.Similar(ctx, *productID, limit)
	}

	span.SetAttributes(attribute.Int("recommendations.results", len(results)))
	return results
}

// Featured returns the first products in catalog order
func (s *recommendationService) Featured(ctx context.Context, limit int) []models.Product {
	limit = ClampLimit(limit)
	featured := s.catalog.Head(limit)

	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"limit":   limit,
		"results": len(featured),
	}).Debug("Featured products selected")

	return featured
}

// Similar returns products in the same category as productID, excluding it.
// Category comparison is exact against the stored value; order is catalog order.
func (s *recommendationService) Similar(ctx context.Context, productID int, limit int) []models.Product {
	limit = ClampLimit(limit)

	source, ok := s.catalog.FindByID(productID)
	if !ok {
		logrus.WithContext(ctx).WithField("product_id", productID).Debug("Recommendation source product not found")
		return []models.Product{}
	}

	_, span := tracing.Start(ctx, "recommendations.filter",
		attribute.String("recommendations.category", source.Category),
	)
	defer span.End()

	similar := make([]models.Product, 0, limit)
	s.catalog.Each(func(p models.Product) bool {
		if p.ID != source.ID && p.Category == source.Category {
			similar = append(similar, p)
		}
		return len(similar) < limit
	})
	span.SetAttributes(attribute.Int("recommendations.results", len(similar)))

	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"product_id": productID,
		"category":   source.Category,
		"limit":      limit,
		"results":    len(similar),
	}).Debug("Similar products selected")

	return similar
}
