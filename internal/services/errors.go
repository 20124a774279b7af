package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrUnsupportedSort is returned when Search is called with an unknown sort key
var ErrUnsupportedSort = errors.New("unsupported sort key")

// ErrDeliveryFailed wraps failures of the underlying mailer
var ErrDeliveryFailed = errors.New("notification delivery failed")

// FieldError describes one rejected request field
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationError is returned when a notification request fails validation
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Message
}

// newValidationError converts validator output into a ValidationError.
// requiredFields is the list quoted back to the caller when fields are missing.
func newValidationError(err error, requiredFields []string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	missing := false
	var invalid []string
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		var message string
		switch fe.Tag() {
		case "required":
			missing = true
			message = fmt.Sprintf("%s is required", fe.Field())
		case "email":
			invalid = append(invalid, fe.Field())
			message = fmt.Sprintf("%s must be a valid email address", fe.Field())
		default:
			invalid = append(invalid, fe.Field())
			message = fmt.Sprintf("%s is invalid", fe.Field())
		}
		fields = append(fields, FieldError{Field: fe.Field(), Tag: fe.Tag(), Message: message})
	}

	msg := "Missing required fields: " + strings.Join(requiredFields, ", ")
	if !missing {
		msg = "Invalid fields: " + strings.Join(invalid, ", ")
	}

	return &ValidationError{Message: msg, Fields: fields}
}
