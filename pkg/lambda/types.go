package lambda

import (
	"context"
	"time"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	RequestID   string            `json:"request_id"`
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
	PathParams  map[string]string `json:"path_params"`
}

// QueryParam returns a query parameter and whether it was present
func (r *Request) QueryParam(name string) (string, bool) {
	if r.QueryParams == nil {
		return "", false
	}
	value, ok := r.QueryParams[name]
	return value, ok
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// HandlerFunc is a framework-agnostic handler interface
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// Observer is notified once per routed request
type Observer interface {
	ObserveRequest(function, route string, statusCode int, duration time.Duration)
}
