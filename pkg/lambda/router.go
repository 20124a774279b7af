package lambda

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Route binds a path matcher and method to a handler
type Route struct {
	Name    string
	Method  string
	Match   func(path string) bool
	Handler HandlerFunc
}

// PathSuffixOrContains matches paths ending in suffix or containing fragment
func PathSuffixOrContains(suffix, fragment string) func(string) bool {
	return func(path string) bool {
		return strings.HasSuffix(path, suffix) || strings.Contains(path, fragment)
	}
}

// PathContains matches paths containing fragment
func PathContains(fragment string) func(string) bool {
	return func(path string) bool {
		return strings.Contains(path, fragment)
	}
}

// Router dispatches requests for a single function. Preflight and health
// checks are answered before any route is consulted; routes are tried in
// registration order and the first matching path wins.
type Router struct {
	service  string
	routes   []Route
	observer Observer
}

// NewRouter creates a router for the named service
func NewRouter(service string, routes ...Route) *Router {
	return &Router{
		service: service,
		routes:  routes,
	}
}

// Service returns the service name reported by health checks
func (r *Router) Service() string {
	return r.service
}

// WithObserver attaches an observer notified after each request
func (r *Router) WithObserver(o Observer) *Router {
	r.observer = o
	return r
}

// Handle routes the request and always produces a response
func (r *Router) Handle(ctx context.Context, req *Request) (resp *Response) {
	start := time.Now()
	route := "not_found"

	logger := logrus.WithContext(ctx).WithFields(logrus.Fields{
		"service":    r.service,
		"request_id": req.RequestID,
		"method":     req.Method,
		"path":       req.Path,
	})

	defer func() {
		if rec := recover(); rec != nil {
			logger.WithField("panic", rec).Error("Unhandled error in handler")
			resp = Error(http.StatusInternalServerError, fmt.Sprint(rec), CodeInternalError, nil)
		}

		if r.observer != nil {
			r.observer.ObserveRequest(r.service, route, resp.StatusCode, time.Since(start))
		}

		logger.WithFields(logrus.Fields{
			"route":       route,
			"status_code": resp.StatusCode,
			"duration":    time.Since(start).String(),
		}).Info("Request completed")
	}()

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	if method == http.MethodOptions {
		route = "preflight"
		return Preflight()
	}

	if strings.HasSuffix(req.Path, "/health") {
		route = "health"
		return Health(r.service)
	}

	for _, rt := range r.routes {
		if !rt.Match(req.Path) {
			continue
		}
		route = rt.Name
		if method != rt.Method {
			return Error(http.StatusMethodNotAllowed, "Method not allowed", CodeMethodNotAllowed, nil)
		}

		out, err := rt.Handler(ctx, req)
		if err != nil {
			logger.WithError(err).Error("Unhandled error in handler")
			return Error(http.StatusInternalServerError, err.Error(), CodeInternalError, nil)
		}
		if out == nil {
			return Error(http.StatusInternalServerError, "empty response", CodeInternalError, nil)
		}
		return out
	}

	return Error(http.StatusNotFound, "Not found", CodeNotFound, nil)
}
