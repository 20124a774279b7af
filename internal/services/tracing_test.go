package services

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"storefront-api/internal/catalog"
	"storefront-api/internal/models"
	"storefront-api/internal/tracing"
)

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	shutdown, err := tracing.Setup(tracing.Config{ServiceName: "storefront-test"}, recorder)
	if err != nil {
		t.Fatalf("Failed to set up tracing: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })
	return recorder
}

func spansByName(spans []sdktrace.ReadOnlySpan) map[string]sdktrace.ReadOnlySpan {
	byName := make(map[string]sdktrace.ReadOnlySpan, len(spans))
	for _, s := range spans {
		byName[s.Name()] = s
	}
	return byName
}

func assertChild(t *testing.T, spans map[string]sdktrace.ReadOnlySpan, child, parent string) {
	t.Helper()
	c, ok := spans[child]
	if !ok {
		t.Fatalf("Expected span %s", child)
	}
	p, ok := spans[parent]
	if !ok {
		t.Fatalf("Expected span %s", parent)
	}
	if c.Parent().SpanID() != p.SpanContext().SpanID() {
		t.Errorf("Expected %s to be a child of %s", child, parent)
	}
}

func intAttr(span sdktrace.ReadOnlySpan, key string) (int64, bool) {
	for _, attr := range span.Attributes() {
		if string(attr.Key) == key {
			return attr.Value.AsInt64(), true
		}
	}
	return 0, false
}

func TestSearchService_Spans(t *testing.T) {
	recorder := recordSpans(t)
	service := NewSearchService(catalog.Default())

	if _, err := service.Search(context.Background(), &SearchFilters{Query: "laptop", Sort: models.SortName}); err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	spans := spansByName(recorder.Ended())
	assertChild(t, spans, "search.filter", "search.query")
	assertChild(t, spans, "search.sort", "search.query")

	if n, ok := intAttr(spans["search.query"], "search.results"); !ok || n != 1 {
		t.Errorf("Expected search.results=1, got %d", n)
	}
	if n, ok := intAttr(spans["search.filter"], "search.candidates"); !ok || n != 12 {
		t.Errorf("Expected search.candidates=12, got %d", n)
	}
}

func TestSearchService_SpanRecordsUnsupportedSort(t *testing.T) {
	recorder := recordSpans(t)
	service := NewSearchService(catalog.Default())

	if _, err := service.Search(context.Background(), &SearchFilters{Sort: "rating"}); err == nil {
		t.Fatal("Expected error for unsupported sort")
	}

	spans := spansByName(recorder.Ended())
	if spans["search.query"].Status().Code != codes.Error {
		t.Errorf("Expected error status, got %+v", spans["search.query"].Status())
	}
	if _, ok := spans["search.filter"]; ok {
		t.Error("Expected no filter stage after a rejected sort")
	}
}

func TestRecommendationService_Spans(t *testing.T) {
	recorder := recordSpans(t)
	service := NewRecommendationService(catalog.Default())

	service.Recommend(context.Background(), intPtr(7), 4)

	spans := spansByName(recorder.Ended())
	assertChild(t, spans, "recommendations.filter", "recommendations.calculate")

	if n, ok := intAttr(spans["recommendations.calculate"], "recommendations.results"); !ok || n != 3 {
		t.Errorf("Expected recommendations.results=3, got %d", n)
	}
}

func TestNotificationService_Spans(t *testing.T) {
	tests := []struct {
		name        string
		mailer      *recordingMailer
		body        string
		wantPrepare codes.Code
		wantSend    bool
		sendStatus  codes.Code
	}{
		{
			name:        "sent",
			mailer:      &recordingMailer{},
			body:        `{"orderId":"1","customerEmail":"a@b.c","trackingNumber":"1Z","status":"shipped"}`,
			wantPrepare: codes.Unset,
			wantSend:    true,
			sendStatus:  codes.Unset,
		},
		{
			name:        "rejected",
			mailer:      &recordingMailer{},
			body:        `{"orderId":"1"}`,
			wantPrepare: codes.Error,
			wantSend:    false,
		},
		{
			name:        "delivery failure",
			mailer:      &recordingMailer{err: errors.New("smtp unavailable")},
			body:        `{"orderId":"1","customerEmail":"a@b.c","trackingNumber":"1Z","status":"shipped"}`,
			wantPrepare: codes.Unset,
			wantSend:    true,
			sendStatus:  codes.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := recordSpans(t)
			service := NewNotificationService(tt.mailer)

			_, _ = service.SendShippingUpdate(context.Background(), decodeShippingUpdate(t, tt.body))

			spans := spansByName(recorder.Ended())
			prepare, ok := spans["notification.prepare"]
			if !ok {
				t.Fatal("Expected notification.prepare span")
			}
			if prepare.Status().Code != tt.wantPrepare {
				t.Errorf("Expected prepare status %v, got %v", tt.wantPrepare, prepare.Status().Code)
			}

			send, ok := spans["notification.send"]
			if ok != tt.wantSend {
				t.Fatalf("Expected notification.send present=%v, got %v", tt.wantSend, ok)
			}
			if ok && send.Status().Code != tt.sendStatus {
				t.Errorf("Expected send status %v, got %v", tt.sendStatus, send.Status().Code)
			}
		})
	}
}
