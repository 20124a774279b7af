package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordRequest tests request metric recording
func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("test-fn", "search", "200"))

	RecordRequest("test-fn", "search", 200, 5*time.Millisecond)
	RequestObserver{}.ObserveRequest("test-fn", "search", 200, time.Millisecond)

	after := testutil.ToFloat64(RequestsTotal.WithLabelValues("test-fn", "search", "200"))
	if after-before != 2 {
		t.Errorf("Expected counter to increase by 2, got %v", after-before)
	}

	if count := testutil.CollectAndCount(RequestDuration, "storefront_request_duration_seconds"); count == 0 {
		t.Error("Expected duration histogram to have series")
	}
}

// TestRecordNotification tests notification outcome counters
func TestRecordNotification(t *testing.T) {
	tests := []struct {
		kind    string
		outcome string
	}{
		{"order_confirmation", OutcomeSent},
		{"order_confirmation", OutcomeRejected},
		{"shipping_update", OutcomeFailed},
	}

	for _, tt := range tests {
		before := testutil.ToFloat64(NotificationsTotal.WithLabelValues(tt.kind, tt.outcome))
		RecordNotification(tt.kind, tt.outcome)
		after := testutil.ToFloat64(NotificationsTotal.WithLabelValues(tt.kind, tt.outcome))
		if after-before != 1 {
			t.Errorf("%s/%s: expected increment of 1, got %v", tt.kind, tt.outcome, after-before)
		}
	}
}

// TestRecordEngineResults tests result-size histogram
func TestRecordEngineResults(t *testing.T) {
	RecordEngineResults("search", 3)
	RecordEngineResults("recommendations", 0)

	if count := testutil.CollectAndCount(EngineResults, "storefront_engine_results"); count < 2 {
		t.Errorf("Expected at least 2 engine series, got %d", count)
	}
}

// TestTrackActiveRequest tests the in-flight gauge
func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(ActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(ActiveRequests); got != before+1 {
		t.Errorf("Expected %v, got %v", before+1, got)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(ActiveRequests); got != before {
		t.Errorf("Expected %v, got %v", before, got)
	}
}

// TestMetricsLint checks metric naming conventions
func TestMetricsLint(t *testing.T) {
	for _, c := range []prometheus.Collector{RequestsTotal, RequestDuration, EngineResults, NotificationsTotal, ActiveRequests} {
		problems, err := testutil.CollectAndLint(c)
		if err != nil {
			t.Fatalf("Lint failed: %v", err)
		}
		for _, p := range problems {
			t.Errorf("Metric %s: %s", p.Metric, p.Text)
		}
	}
}
