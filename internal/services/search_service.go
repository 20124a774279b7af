package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"storefront-api/internal/catalog"
	"storefront-api/internal/models"
	"storefront-api/internal/tracing"
)

// searchService implements the SearchService interface
type searchService struct {
	catalog *catalog.Catalog
}

// NewSearchService creates a new search service instance
func NewSearchService(c *catalog.Catalog) SearchService {
	return &searchService{
		catalog: c,
	}
}

// productFilter narrows the working set; absent filters are never built
type productFilter func(p *models.Product) bool

// Search applies each active filter in turn, then sorts the survivors
func (s *searchService) Search(ctx context.Context, filters *SearchFilters) ([]models.Product, error) {
	if filters == nil {
		filters = &SearchFilters{Sort: models.DefaultSortKey}
	}

	ctx, span := tracing.Start(ctx, "search.query",
		attribute.String("search.query", filters.Query),
		attribute.String("search.category", filters.Category),
		attribute.String("search.sort", filters.Sort.String()),
	)
	defer span.End()

	less, err := sortLess(filters.Sort)
	if err != nil {
		tracing.Fail(span, err)
		return nil, err
	}

	results := s.filter(ctx, filters)
	sortProducts(ctx, results, filters.Sort, less)

	span.SetAttributes(attribute.Int("search.results", len(results)))

	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"query":    filters.Query,
		"category": filters.Category,
		"sort":     filters.Sort,
		"results":  len(results),
	}).Debug("Catalog search completed")

	return results, nil
}

// filter returns a fresh slice of the products that pass every active filter
func (s *searchService) filter(ctx context.Context, filters *SearchFilters) []models.Product {
	_, span := tracing.Start(ctx, "search.filter")
	defer span.End()

	results := s.catalog.Products()
	active := buildFilters(filters)
	for _, keep := range active {
		results = applyFilter(results, keep)
	}

	span.SetAttributes(
		attribute.Int("search.filters", len(active)),
		attribute.Int("search.candidates", s.catalog.Len()),
		attribute.Int("search.matched", len(results)),
	)
	return results
}

// sortProducts orders products in place; ties keep catalog order
func sortProducts(ctx context.Context, products []models.Product, key models.SortKey, less func(a, b *models.Product) bool) {
	_, span := tracing.Start(ctx, "search.sort", attribute.String("search.sort", key.String()))
	defer span.End()

	sort.SliceStable(products, func(i, j int) bool {
		return less(&products[i], &products[j])
	})
}

// buildFilters returns the active predicates in evaluation order:
// text query, category, min price, max price.
func buildFilters(filters *SearchFilters) []productFilter {
	var active []productFilter

	if q := normalize(strings.TrimSpace(filters.Query)); q != "" {
		active = append(active, func(p *models.Product) bool {
			for _, field := range p.GetSearchableText() {
				if strings.Contains(normalize(field), q) {
					return true
				}
			}
			return false
		})
	}

	if category := normalize(strings.TrimSpace(filters.Category)); category != "" {
		active = append(active, func(p *models.Product) bool {
			return normalize(p.Category) == category
		})
	}

	if filters.MinPrice != nil {
		minPrice := *filters.MinPrice
		active = append(active, func(p *models.Product) bool {
			return p.Price.GreaterThanOrEqual(minPrice)
		})
	}

	if filters.MaxPrice != nil {
		maxPrice := *filters.MaxPrice
		active = append(active, func(p *models.Product) bool {
			return p.Price.LessThanOrEqual(maxPrice)
		})
	}

	return active
}

func applyFilter(products []models.Product, keep productFilter) []models.Product {
	kept := products[:0]
	for i := range products {
		if keep(&products[i]) {
			kept = append(kept, products[i])
		}
	}
	return kept
}

// sortLess returns the ordering for a sort key
func sortLess(key models.SortKey) (func(a, b *models.Product) bool, error) {
	switch key {
	case models.SortPriceAsc:
		return func(a, b *models.Product) bool {
			return a.Price.LessThan(b.Price.Decimal)
		}, nil
	case models.SortPriceDesc:
		return func(a, b *models.Product) bool {
			return a.Price.GreaterThan(b.Price.Decimal)
		}, nil
	case models.SortName:
		return func(a, b *models.Product) bool {
			return normalize(a.Name) < normalize(b.Name)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSort, key)
	}
}

// normalize is the single case-folding rule shared by every
// case-insensitive comparison in search
func normalize(s string) string {
	return strings.ToLower(s)
}

// ParsePrice parses an optional price bound. An empty value means no bound.
func ParsePrice(value string) (*decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	price, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", value, err)
	}

	return &price, nil
}
