package handlers

import (
	"net/http"

	"storefront-api/pkg/lambda"
)

// Error codes returned in the "code" field of error responses
const (
	CodeInvalidSort      = "INVALID_SORT"
	CodeInvalidMinPrice  = "INVALID_MIN_PRICE"
	CodeInvalidMaxPrice  = "INVALID_MAX_PRICE"
	CodeInvalidLimit     = "INVALID_LIMIT"
	CodeInvalidProductID = "INVALID_PRODUCT_ID"
	CodeInvalidJSON      = "INVALID_JSON"
	CodeValidationError  = "VALIDATION_ERROR"
)

// ErrorResponse represents a standard error response
type ErrorResponse = lambda.ErrorBody

func badRequest(message, code string) *lambda.Response {
	return lambda.Error(http.StatusBadRequest, message, code, nil)
}

func internalError(err error) *lambda.Response {
	return lambda.Error(http.StatusInternalServerError, err.Error(), lambda.CodeInternalError, nil)
}
