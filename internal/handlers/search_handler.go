package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/metrics"
	"storefront-api/internal/models"
	"storefront-api/internal/services"
	"storefront-api/pkg/lambda"
)

// SearchResponse is the body of a successful search
type SearchResponse struct {
	Products []models.Product `json:"products"`
	Count    int              `json:"count"`
}

// SearchHandler handles catalog search requests
type SearchHandler struct {
	searchService services.SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// @Summary Search products
// @Description Filter the catalog by text, category and price range, then sort
// @Tags search
// @Produce json
// @Param q query string false "Case-insensitive substring of name or description"
// @Param category query string false "Case-insensitive category"
// @Param minPrice query number false "Inclusive lower price bound"
// @Param maxPrice query number false "Inclusive upper price bound"
// @Param sort query string false "Sort order" Enums(name, price_asc, price_desc) default(name)
// @Success 200 {object} SearchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	ginHandler(h.HandleSearch)(c)
}

// HandleSearch handles product search for Lambda
func (h *SearchHandler) HandleSearch(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	filters, errResp := parseSearchFilters(req)
	if errResp != nil {
		return errResp, nil
	}

	products, err := h.searchService.Search(ctx, filters)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedSort) {
			return badRequest(invalidSortMessage(), CodeInvalidSort), nil
		}
		return nil, err
	}

	metrics.RecordEngineResults("search", len(products))

	return lambda.JSON(http.StatusOK, SearchResponse{
		Products: products,
		Count:    len(products),
	}), nil
}

// parseSearchFilters reads search parameters. Sort is checked before the
// price bounds; blank q and category mean no filter.
func parseSearchFilters(req *lambda.Request) (*services.SearchFilters, *lambda.Response) {
	filters := &services.SearchFilters{
		Query:    strings.TrimSpace(req.QueryParams["q"]),
		Category: strings.TrimSpace(req.QueryParams["category"]),
		Sort:     models.DefaultSortKey,
	}

	if raw, ok := req.QueryParam("sort"); ok {
		key, err := models.ParseSortKey(raw)
		if err != nil {
			return nil, badRequest(invalidSortMessage(), CodeInvalidSort)
		}
		filters.Sort = key
	}

	if raw := req.QueryParams["minPrice"]; raw != "" {
		price, err := services.ParsePrice(raw)
		if err != nil || price == nil {
			return nil, badRequest("Invalid minPrice", CodeInvalidMinPrice)
		}
		filters.MinPrice = price
	}

	if raw := req.QueryParams["maxPrice"]; raw != "" {
		price, err := services.ParsePrice(raw)
		if err != nil || price == nil {
			return nil, badRequest("Invalid maxPrice", CodeInvalidMaxPrice)
		}
		filters.MaxPrice = price
	}

	return filters, nil
}

func invalidSortMessage() string {
	return "Invalid sort. Must be one of: " + strings.Join(models.SortKeys(), ", ")
}
