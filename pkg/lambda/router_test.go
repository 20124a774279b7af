package lambda

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"
)

type recordedObservation struct {
	function string
	route    string
	status   int
}

type recordingObserver struct {
	observations []recordedObservation
}

func (o *recordingObserver) ObserveRequest(function, route string, statusCode int, duration time.Duration) {
	o.observations = append(o.observations, recordedObservation{function, route, statusCode})
}

func newTestRouter() *Router {
	return NewRouter("test-service",
		Route{
			Name:   "items",
			Method: http.MethodGet,
			Match:  PathSuffixOrContains("/items", "/api/items"),
			Handler: func(ctx context.Context, req *Request) (*Response, error) {
				return JSON(http.StatusOK, map[string]string{"ok": "yes"}), nil
			},
		},
		Route{
			Name:   "boom",
			Method: http.MethodPost,
			Match:  PathContains("boom"),
			Handler: func(ctx context.Context, req *Request) (*Response, error) {
				panic("kaboom")
			},
		},
		Route{
			Name:   "fail",
			Method: http.MethodPost,
			Match:  PathContains("fail"),
			Handler: func(ctx context.Context, req *Request) (*Response, error) {
				return nil, errors.New("downstream unavailable")
			},
		},
	)
}

func decodeBody(t *testing.T, resp *Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		t.Fatalf("Failed to decode body %q: %v", resp.Body, err)
	}
	return body
}

func assertCORS(t *testing.T, resp *Response) {
	t.Helper()
	for k, v := range CORSHeaders {
		if resp.Headers[k] != v {
			t.Errorf("Expected header %s=%s, got %q", k, v, resp.Headers[k])
		}
	}
}

func TestRouter_Handle(t *testing.T) {
	router := newTestRouter()
	ctx := context.Background()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantCode   string
	}{
		{name: "suffix match", method: "GET", path: "/prod/items", wantStatus: 200},
		{name: "fragment match", method: "GET", path: "/api/items/extra", wantStatus: 200},
		{name: "default method is GET", method: "", path: "/items", wantStatus: 200},
		{name: "wrong method", method: "DELETE", path: "/items", wantStatus: 405, wantCode: CodeMethodNotAllowed},
		{name: "unknown path", method: "GET", path: "/other", wantStatus: 404, wantCode: CodeNotFound},
		{name: "panic", method: "POST", path: "/boom", wantStatus: 500, wantCode: CodeInternalError},
		{name: "handler error", method: "POST", path: "/fail", wantStatus: 500, wantCode: CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := router.Handle(ctx, &Request{Method: tt.method, Path: tt.path})
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d", tt.wantStatus, resp.StatusCode)
			}
			assertCORS(t, resp)

			if tt.wantCode != "" {
				body := decodeBody(t, resp)
				if body["code"] != tt.wantCode {
					t.Errorf("Expected code %s, got %v", tt.wantCode, body["code"])
				}
				if _, ok := body["error"].(string); !ok {
					t.Error("Expected error message")
				}
			}
		})
	}
}

func TestRouter_PanicMessage(t *testing.T) {
	resp := newTestRouter().Handle(context.Background(), &Request{Method: "POST", Path: "/boom"})

	body := decodeBody(t, resp)
	if body["error"] != "kaboom" {
		t.Errorf("Expected panic message in body, got %v", body["error"])
	}
}

func TestRouter_PreflightAndHealth(t *testing.T) {
	router := newTestRouter()
	ctx := context.Background()

	if router.Service() != "test-service" {
		t.Errorf("Expected service test-service, got %s", router.Service())
	}

	resp := router.Handle(ctx, &Request{Method: "OPTIONS", Path: "/anything/health"})
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("Expected 204 for OPTIONS, got %d", resp.StatusCode)
	}
	if string(resp.Body) != "{}" {
		t.Errorf("Expected empty object body, got %s", resp.Body)
	}
	assertCORS(t, resp)

	resp = router.Handle(ctx, &Request{Method: "POST", Path: "/prod/health"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 for health, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["status"] != "healthy" || body["service"] != "test-service" {
		t.Errorf("Unexpected health body: %v", body)
	}
}

func TestRouter_Observer(t *testing.T) {
	observer := &recordingObserver{}
	router := newTestRouter().WithObserver(observer)
	ctx := context.Background()

	router.Handle(ctx, &Request{Method: "GET", Path: "/items"})
	router.Handle(ctx, &Request{Method: "GET", Path: "/missing"})
	router.Handle(ctx, &Request{Method: "POST", Path: "/boom"})

	want := []recordedObservation{
		{"test-service", "items", 200},
		{"test-service", "not_found", 404},
		{"test-service", "boom", 500},
	}
	if len(observer.observations) != len(want) {
		t.Fatalf("Expected %d observations, got %d", len(want), len(observer.observations))
	}
	for i := range want {
		if observer.observations[i] != want[i] {
			t.Errorf("Observation %d: expected %+v, got %+v", i, want[i], observer.observations[i])
		}
	}
}

func TestError_Details(t *testing.T) {
	resp := Error(http.StatusBadRequest, "bad", "BAD", nil)
	if string(resp.Body) != `{"error":"bad","code":"BAD"}` {
		t.Errorf("Unexpected body without details: %s", resp.Body)
	}

	resp = Error(http.StatusBadRequest, "bad", "BAD", []string{"a"})
	body := decodeBody(t, resp)
	if _, ok := body["details"]; !ok {
		t.Error("Expected details in body")
	}
}
