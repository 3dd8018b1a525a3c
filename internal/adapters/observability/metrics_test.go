package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AnthonyM972321/LuxuryBot/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so counters are non-zero
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)
	observability.ObserveRemote("docstore", "create_property", nil)
	observability.ObserveGeneration("welcome")

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	if !strings.Contains(out, "luxurybot_http_requests_total") {
		t.Fatalf("expected luxurybot_http_requests_total in output")
	}
	if !strings.Contains(out, "luxurybot_remote_ops_total") {
		t.Fatalf("expected luxurybot_remote_ops_total in output")
	}
}
