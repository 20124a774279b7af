package models

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// NotificationKind identifies which customer message is being sent
type NotificationKind string

const (
	NotificationOrderConfirmation NotificationKind = "order_confirmation"
	NotificationShippingUpdate    NotificationKind = "shipping_update"
)

// OrderID holds an order identifier exactly as the client sent it.
// The storefront sends either a JSON string or a JSON number; both are
// echoed back unchanged. Empty strings, zero, false, null, [] and {} decode
// to an unset OrderID so that `validate:"required"` rejects them.
type OrderID json.RawMessage

// UnmarshalJSON implements json.Unmarshaler
func (o *OrderID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch string(trimmed) {
	case "null", `""`, "0", "false":
		*o = nil
		return nil
	}

	var decoded interface{}
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return err
	}
	if isEmptyJSONValue(decoded) {
		*o = nil
		return nil
	}

	*o = append((*o)[:0], trimmed...)
	return nil
}

// isEmptyJSONValue reports whether a decoded JSON value is a zero number or an
// empty array or object
func isEmptyJSONValue(v interface{}) bool {
	switch v := v.(type) {
	case float64:
		return v == 0
	case []interface{}:
		return len(v) == 0
	case map[string]interface{}:
		return len(v) == 0
	default:
		return false
	}
}

// MarshalJSON implements json.Marshaler
func (o OrderID) MarshalJSON() ([]byte, error) {
	if len(o) == 0 {
		return []byte("null"), nil
	}
	return []byte(o), nil
}

// String returns a log-friendly form of the identifier
func (o OrderID) String() string {
	if len(o) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(o, &s); err == nil {
		return s
	}
	return string(o)
}

// OrderItem is a line on an order confirmation
type OrderItem struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// OrderConfirmationRequest is the body of an order confirmation notification.
// Items may be omitted; a zero totalAmount is accepted but a missing one is not.
type OrderConfirmationRequest struct {
	OrderID       OrderID          `json:"orderId" validate:"required"`
	CustomerEmail string           `json:"customerEmail" validate:"required"`
	CustomerName  string           `json:"customerName" validate:"required"`
	Items         []OrderItem      `json:"items"`
	TotalAmount   *decimal.Decimal `json:"totalAmount" validate:"required"`
}

// ShippingUpdateRequest is the body of a shipping update notification
type ShippingUpdateRequest struct {
	OrderID        OrderID `json:"orderId" validate:"required"`
	CustomerEmail  string  `json:"customerEmail" validate:"required"`
	TrackingNumber string  `json:"trackingNumber" validate:"required"`
	Status         string  `json:"status" validate:"required"`
}

// NotificationResult is returned to the caller once a notification is dispatched
type NotificationResult struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	OrderID OrderID `json:"orderId"`
}
