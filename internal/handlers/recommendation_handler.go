package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/metrics"
	"storefront-api/internal/models"
	"storefront-api/internal/services"
	"storefront-api/pkg/lambda"
)

// RecommendationResponse is the body of a successful recommendation lookup
type RecommendationResponse struct {
	Recommendations []models.Product `json:"recommendations"`
}

// RecommendationHandler handles product recommendation requests
type RecommendationHandler struct {
	recommendationService services.RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recommendationService services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
	}
}

// @Summary Get recommendations
// @Description Products in the same category as productId, or featured products when productId is omitted
// @Tags recommendations
// @Produce json
// @Param productId query int false "Source product ID"
// @Param limit query int false "Number of products, clamped to 1..20" default(4)
// @Success 200 {object} RecommendationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recommendations [get]
func (h *RecommendationHandler) Recommendations(c *gin.Context) {
	ginHandler(h.HandleRecommendations)(c)
}

// HandleRecommendations handles recommendation lookups for Lambda
func (h *RecommendationHandler) HandleRecommendations(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	limitStr, ok := req.QueryParam("limit")
	if !ok {
		limitStr = strconv.Itoa(services.DefaultRecommendationLimit)
	}

	limit, err := parseQueryInt(limitStr)
	if err != nil {
		return badRequest("Invalid limit parameter", CodeInvalidLimit), nil
	}
	limit = services.ClampLimit(limit)

	var productID *int
	if raw := req.QueryParams["productId"]; raw != "" {
		id, err := parseQueryInt(raw)
		if err != nil {
			return badRequest("Invalid productId parameter", CodeInvalidProductID), nil
		}
		productID = &id
	}

	recommendations := h.recommendationService.Recommend(ctx, productID, limit)
	metrics.RecordEngineResults("recommendations", len(recommendations))

	return lambda.JSON(http.StatusOK, RecommendationResponse{
		Recommendations: recommendations,
	}), nil
}

// parseQueryInt parses a base-10 integer parameter. Values outside the int
// range are well-formed and saturate to the nearest bound, so an oversized
// limit still clamps and an oversized productId matches nothing.
func parseQueryInt(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil && errors.Is(err, strconv.ErrRange) {
		return n, nil
	}
	return n, err
}
