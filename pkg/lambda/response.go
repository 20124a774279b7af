package lambda

import (
	"encoding/json"
	"net/http"
)

// Error codes shared by every function
const (
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeNotFound         = "NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
)

// CORSHeaders are attached to every response
var CORSHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "*",
	"Access-Control-Allow-Methods": "GET,POST,PUT,DELETE,OPTIONS",
}

// ErrorBody is the JSON shape of every error response
type ErrorBody struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func baseHeaders() map[string]string {
	headers := make(map[string]string, len(CORSHeaders)+1)
	for k, v := range CORSHeaders {
		headers[k] = v
	}
	headers["Content-Type"] = "application/json"
	return headers
}

// JSON builds a response with a JSON body and CORS headers
func JSON(statusCode int, body interface{}) *Response {
	data, err := json.Marshal(body)
	if err != nil {
		return &Response{
			StatusCode: http.StatusInternalServerError,
			Headers:    baseHeaders(),
			Body:       []byte(`{"error":"failed to encode response","code":"INTERNAL_ERROR"}`),
		}
	}

	return &Response{
		StatusCode: statusCode,
		Headers:    baseHeaders(),
		Body:       data,
	}
}

// Error builds an error response. Details are omitted when nil.
func Error(statusCode int, message, code string, details interface{}) *Response {
	return JSON(statusCode, ErrorBody{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// Health builds the health check response for a function
func Health(service string) *Response {
	return JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": service,
	})
}

// Preflight builds the CORS preflight response
func Preflight() *Response {
	return JSON(http.StatusNoContent, struct{}{})
}
