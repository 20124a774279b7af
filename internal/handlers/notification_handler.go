package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront-api/internal/metrics"
	"storefront-api/internal/models"
	"storefront-api/internal/services"
	"storefront-api/pkg/lambda"
)

// NotificationHandler handles customer notification requests
type NotificationHandler struct {
	notificationService services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// @Summary Send order confirmation
// @Description Validate an order and send the confirmation email
// @Tags notifications
// @Accept json
// @Produce json
// @Param order body models.OrderConfirmationRequest true "Order details"
// @Success 200 {object} models.NotificationResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /notifications/order-confirmation [post]
func (h *NotificationHandler) OrderConfirmation(c *gin.Context) {
	ginHandler(h.HandleOrderConfirmation)(c)
}

// @Summary Send shipping update
// @Description Validate a shipment status change and send the update email
// @Tags notifications
// @Accept json
// @Produce json
// @Param update body models.ShippingUpdateRequest true "Shipping details"
// @Success 200 {object} models.NotificationResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /notifications/shipping-update [post]
func (h *NotificationHandler) ShippingUpdate(c *gin.Context) {
	ginHandler(h.HandleShippingUpdate)(c)
}

// HandleOrderConfirmation handles order confirmations for Lambda
func (h *NotificationHandler) HandleOrderConfirmation(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	kind := string(models.NotificationOrderConfirmation)

	var body models.OrderConfirmationRequest
	if err := decodeBody(req.Body, &body); err != nil {
		metrics.RecordNotification(kind, metrics.OutcomeRejected)
		return badRequest("Invalid JSON body", CodeInvalidJSON), nil
	}

	result, err := h.notificationService.SendOrderConfirmation(ctx, &body)
	return notificationResponse(ctx, kind, result, err), nil
}

// HandleShippingUpdate handles shipping updates for Lambda
func (h *NotificationHandler) HandleShippingUpdate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	kind := string(models.NotificationShippingUpdate)

	var body models.ShippingUpdateRequest
	if err := decodeBody(req.Body, &body); err != nil {
		metrics.RecordNotification(kind, metrics.OutcomeRejected)
		return badRequest("Invalid JSON body", CodeInvalidJSON), nil
	}

	result, err := h.notificationService.SendShippingUpdate(ctx, &body)
	return notificationResponse(ctx, kind, result, err), nil
}

// decodeBody parses a JSON request body; an empty body is an empty object
func decodeBody(body []byte, v interface{}) error {
	if len(body) == 0 {
		body = []byte("{}")
	}
	return json.Unmarshal(body, v)
}

func notificationResponse(ctx context.Context, kind string, result *models.NotificationResult, err error) *lambda.Response {
	if err == nil {
		metrics.RecordNotification(kind, metrics.OutcomeSent)
		return lambda.JSON(http.StatusOK, result)
	}

	var verr *services.ValidationError
	if errors.As(err, &verr) {
		metrics.RecordNotification(kind, metrics.OutcomeRejected)
		return lambda.Error(http.StatusBadRequest, verr.Message, CodeValidationError, verr.Fields)
	}

	metrics.RecordNotification(kind, metrics.OutcomeFailed)
	logrus.WithContext(ctx).WithError(err).WithField("kind", kind).Error("Failed to send notification")
	return internalError(err)
}
