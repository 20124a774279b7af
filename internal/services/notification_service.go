package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"storefront-api/internal/models"
	"storefront-api/internal/tracing"
)

var (
	orderConfirmationFields = []string{"orderId", "customerEmail", "customerName", "items", "totalAmount"}
	shippingUpdateFields    = []string{"orderId", "customerEmail", "trackingNumber", "status"}
)

// notificationService implements the NotificationService interface
type notificationService struct {
	mailer    Mailer
	validator *validator.Validate
	templates map[models.NotificationKind]*template.Template
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(mailer Mailer) NotificationService {
	if mailer == nil {
		mailer = NewLogMailer()
	}

	return &notificationService{
		mailer:    mailer,
		validator: newRequestValidator(),
		templates: map[models.NotificationKind]*template.Template{
			models.NotificationOrderConfirmation: template.Must(template.New("order_confirmation").Parse(orderConfirmationTemplate)),
			models.NotificationShippingUpdate:    template.Must(template.New("shipping_update").Parse(shippingUpdateTemplate)),
		},
	}
}

// newRequestValidator reports fields by their json names
func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// SendOrderConfirmation validates the order and hands the rendered email to the mailer
func (s *notificationService) SendOrderConfirmation(ctx context.Context, req *models.OrderConfirmationRequest) (*models.NotificationResult, error) {
	if req == nil {
		req = &models.OrderConfirmationRequest{}
	}
	kind := models.NotificationOrderConfirmation

	msg, err := s.prepare(ctx, kind, req, orderConfirmationFields, func() (*Message, error) {
		msg, err := s.render(kind, req.CustomerEmail, fmt.Sprintf("Order confirmation #%s", req.OrderID), req)
		if err != nil {
			return nil, err
		}
		msg.TextBody = orderConfirmationText(req)
		msg.Fields = logrus.Fields{
			"order_id": req.OrderID.String(),
			"items":    len(req.Items),
			"total":    req.TotalAmount.StringFixed(2),
		}
		return msg, nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.send(ctx, msg, req.OrderID.String()); err != nil {
		return nil, err
	}

	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"message_id": msg.ID,
		"order_id":   req.OrderID.String(),
	}).Info("Order confirmation sent")

	return &models.NotificationResult{
		Success: true,
		Message: "Order confirmation sent",
		OrderID: req.OrderID,
	}, nil
}

// SendShippingUpdate validates the update and hands the rendered email to the mailer
func (s *notificationService) SendShippingUpdate(ctx context.Context, req *models.ShippingUpdateRequest) (*models.NotificationResult, error) {
	if req == nil {
		req = &models.ShippingUpdateRequest{}
	}
	kind := models.NotificationShippingUpdate

	msg, err := s.prepare(ctx, kind, req, shippingUpdateFields, func() (*Message, error) {
		msg, err := s.render(kind, req.CustomerEmail, fmt.Sprintf("Shipping update for order #%s", req.OrderID), req)
		if err != nil {
			return nil, err
		}
		msg.TextBody = fmt.Sprintf("Your order %s is now %s.\nTracking number: %s\n",
			req.OrderID, req.Status, req.TrackingNumber)
		msg.Fields = logrus.Fields{
			"order_id":        req.OrderID.String(),
			"tracking_number": req.TrackingNumber,
			"status":          req.Status,
		}
		return msg, nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.send(ctx, msg, req.OrderID.String()); err != nil {
		return nil, err
	}

	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"message_id": msg.ID,
		"order_id":   req.OrderID.String(),
		"status":     req.Status,
	}).Info("Shipping update sent")

	return &models.NotificationResult{
		Success: true,
		Message: "Shipping update sent",
		OrderID: req.OrderID,
	}, nil
}

// prepare validates req and builds the message inside a notification.prepare span
func (s *notificationService) prepare(ctx context.Context, kind models.NotificationKind, req interface{}, requiredFields []string, build func() (*Message, error)) (*Message, error) {
	_, span := tracing.Start(ctx, "notification.prepare", attribute.String("notification.kind", string(kind)))
	defer span.End()

	if err := s.validateRequest(req, requiredFields); err != nil {
		tracing.Fail(span, err)
		return nil, err
	}

	msg, err := build()
	if err != nil {
		tracing.Fail(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.String("notification.message_id", msg.ID))
	return msg, nil
}

// send hands msg to the mailer inside a notification.send span
func (s *notificationService) send(ctx context.Context, msg *Message, orderID string) error {
	ctx, span := tracing.Start(ctx, "notification.send",
		attribute.String("notification.kind", msg.Kind),
		attribute.String("notification.message_id", msg.ID),
		attribute.String("notification.order_id", orderID),
	)
	defer span.End()

	if err := s.mailer.Send(ctx, msg); err != nil {
		err = fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
		tracing.Fail(span, err)
		return err
	}
	return nil
}

func (s *notificationService) validateRequest(req interface{}, requiredFields []string) error {
	if err := s.validator.Struct(req); err != nil {
		return newValidationError(err, requiredFields)
	}
	return nil
}

func (s *notificationService) render(kind models.NotificationKind, to, subject string, data interface{}) (*Message, error) {
	tmpl, ok := s.templates[kind]
	if !ok {
		return nil, fmt.Errorf("template not found: %s", kind)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render email template: %w", err)
	}

	return &Message{
		ID:       uuid.New().String(),
		Kind:     string(kind),
		To:       to,
		Subject:  subject,
		HTMLBody: buf.String(),
	}, nil
}

func orderConfirmationText(req *models.OrderConfirmationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nThanks for your order %s.\n\n", req.CustomerName, req.OrderID)
	for _, item := range req.Items {
		fmt.Fprintf(&b, "%d x %s  $%s\n", item.Quantity, item.ProductName, item.Price.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal: $%s\n", req.TotalAmount.StringFixed(2))
	return b.String()
}

const orderConfirmationTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Order confirmation</title>
</head>
<body>
    <h1>Thanks for your order, {{.CustomerName}}!</h1>
    <p><strong>Order:</strong> {{.OrderID}}</p>

    <table border="1" style="border-collapse: collapse; width: 100%;">
        <tr>
            <th>Product</th>
            <th>Quantity</th>
            <th>Price</th>
        </tr>
        {{range .Items}}
        <tr>
            <td>{{.ProductName}}</td>
            <td>{{.Quantity}}</td>
            <td>${{.Price.StringFixed 2}}</td>
        </tr>
        {{end}}
    </table>

    <p><strong>Total:</strong> ${{.TotalAmount.StringFixed 2}}</p>
</body>
</html>
`

const shippingUpdateTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Shipping update</title>
</head>
<body>
    <h1>Your order is on its way</h1>
    <p><strong>Order:</strong> {{.OrderID}}</p>
    <p><strong>Status:</strong> {{.Status}}</p>
    <p><strong>Tracking number:</strong> {{.TrackingNumber}}</p>
</body>
</html>
`
