package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront-api/internal/middleware"
	"storefront-api/internal/services"
	"storefront-api/pkg/lambda"
)

// Service names reported by each function's health check
const (
	SearchServiceName          = "rum-shop-search"
	RecommendationsServiceName = "kelvo-ecomm-recommendations"
	NotificationsServiceName   = "rum-shop-notifications"

	// LocalServiceName is reported by the local server's health check
	LocalServiceName = "storefront-api"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	SearchService         services.SearchService
	RecommendationService services.RecommendationService
	NotificationService   services.NotificationService
}

// NewSearchRouter builds the router for the search function
func NewSearchRouter(searchService services.SearchService) *lambda.Router {
	h := NewSearchHandler(searchService)
	return lambda.NewRouter(SearchServiceName, lambda.Route{
		Name:    "search",
		Method:  http.MethodGet,
		Match:   lambda.PathSuffixOrContains("/search", "/api/search"),
		Handler: h.HandleSearch,
	})
}

// NewRecommendationsRouter builds the router for the recommendations function
func NewRecommendationsRouter(recommendationService services.RecommendationService) *lambda.Router {
	h := NewRecommendationHandler(recommendationService)
	return lambda.NewRouter(RecommendationsServiceName, lambda.Route{
		Name:    "recommendations",
		Method:  http.MethodGet,
		Match:   lambda.PathSuffixOrContains("/recommendations", "/api/recommendations"),
		Handler: h.HandleRecommendations,
	})
}

// NewNotificationsRouter builds the router for the notifications function
func NewNotificationsRouter(notificationService services.NotificationService) *lambda.Router {
	h := NewNotificationHandler(notificationService)
	return lambda.NewRouter(NotificationsServiceName,
		lambda.Route{
			Name:    "order_confirmation",
			Method:  http.MethodPost,
			Match:   lambda.PathContains("order-confirmation"),
			Handler: h.HandleOrderConfirmation,
		},
		lambda.Route{
			Name:    "shipping_update",
			Method:  http.MethodPost,
			Match:   lambda.PathContains("shipping-update"),
			Handler: h.HandleShippingUpdate,
		},
	)
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	searchHandler := NewSearchHandler(config.SearchService)
	recommendationHandler := NewRecommendationHandler(config.RecommendationService)
	notificationHandler := NewNotificationHandler(config.NotificationService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		writeGin(c, lambda.Health(LocalServiceName))
	})

	api := router.Group("/api")
	{
		api.GET("/search", searchHandler.Search)
		api.GET("/recommendations", recommendationHandler.Recommendations)

		notifications := api.Group("/notifications")
		{
			notifications.POST("/order-confirmation", notificationHandler.OrderConfirmation)
			notifications.POST("/shipping-update", notificationHandler.ShippingUpdate)
		}
	}

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		writeGin(c, lambda.Error(http.StatusMethodNotAllowed, "Method not allowed", lambda.CodeMethodNotAllowed, nil))
	})
	router.NoRoute(func(c *gin.Context) {
		writeGin(c, lambda.Error(http.StatusNotFound, "Not found", lambda.CodeNotFound, nil))
	})
}

// MiddlewareConfig holds settings for the global middleware chain
type MiddlewareConfig struct {
	RateLimitRPS   float64
	RateLimitBurst int
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, config *MiddlewareConfig) {
	if config == nil {
		config = &MiddlewareConfig{RateLimitRPS: 100, RateLimitBurst: 200}
	}

	// Request ID
	router.Use(middleware.RequestID())

	// CORS
	router.Use(middleware.CORS())

	// Security headers
	router.Use(middleware.SecurityHeaders())

	// Request size limit (1MB)
	router.Use(middleware.RequestSizeLimit(1024 * 1024))

	// Rate limiting
	router.Use(middleware.RateLimiter(config.RateLimitRPS, config.RateLimitBurst))

	// Structured logging
	router.Use(middleware.StructuredLogger())

	// Performance monitoring (log requests over 1 second)
	router.Use(middleware.PerformanceMonitor(time.Second))

	// Request metrics
	router.Use(middleware.Metrics(LocalServiceName))

	// Panic recovery
	router.Use(middleware.Recovery())
}
