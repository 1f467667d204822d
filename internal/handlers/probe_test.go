package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/whatap/mock-azure-exporter/internal/exporter"
)

func newTestProbeHandlers(t *testing.T) *ProbeHandlers {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Unix(1700000000, 0))
	return NewProbeHandlers(exporter.NewWithClock(clock))
}

func TestProbeMissingParameters(t *testing.T) {
	h := newTestProbeHandlers(t)

	req := httptest.NewRequest("GET", "/probe/metrics/resource?subscription=S", nil)
	rec := httptest.NewRecorder()

	h.Resource(rec, req)

	// Missing parameters are not an HTTP error.
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "azure_exporter_error") {
		t.Error("body missing azure_exporter_error")
	}
	if !strings.Contains(body, "azure_exporter_request_info") {
		t.Error("body missing azure_exporter_request_info")
	}
	if strings.Contains(body, "azure_exporter_scrape_success") {
		t.Error("error payload must not contain azure_exporter_scrape_success")
	}
	// Defaults are echoed in the error payload.
	if !strings.Contains(body, `interval="PT1M"`) || !strings.Contains(body, `aggregation="average"`) {
		t.Errorf("error payload missing defaults, got:\n%s", body)
	}
}

func TestProbeFullGeneration(t *testing.T) {
	h := newTestProbeHandlers(t)

	req := httptest.NewRequest("GET",
		"/probe/metrics/resource?subscription=S&target=Microsoft.Sql/managedInstances/x&metric=avg_cpu_percent,virtual_core_count&interval=PT5M&aggregation=maximum", nil)
	rec := httptest.NewRecorder()

	h.Resource(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != expositionContentType {
		t.Errorf("Content-Type = %q, want %q", ct, expositionContentType)
	}

	body := rec.Body.String()
	labels := `{subscription="S",resource_type="sql_managed_instance",aggregation="maximum",interval="PT5M"}`
	for _, want := range []string{
		"azure_sql_avg_cpu_percent" + labels,
		"azure_sql_virtual_core_count" + labels,
		`azure_exporter_scrape_duration_seconds{subscription="S"}`,
		`azure_exporter_scrape_success{subscription="S"} 1`,
		"up 1 1700000000",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestProbeDefaults(t *testing.T) {
	h := newTestProbeHandlers(t)

	req := httptest.NewRequest("GET",
		"/probe/metrics/resource?subscription=S&target=t&metric=avg_cpu_percent", nil)
	rec := httptest.NewRecorder()

	h.Resource(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `aggregation="average",interval="PT1M"`) {
		t.Errorf("body missing default interval/aggregation labels, got:\n%s", body)
	}
}

func TestProbeVMCPUMetric(t *testing.T) {
	h := newTestProbeHandlers(t)

	req := httptest.NewRequest("GET",
		"/probe/metrics/resource?subscription=S&target=t&metric=FooCPUBar", nil)
	rec := httptest.NewRecorder()

	h.Resource(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "azure_vm_cpu_percent{") {
		t.Error("body missing azure_vm_cpu_percent")
	}
	if !strings.Contains(body, `metric_name="FooCPUBar"`) {
		t.Error("body missing metric_name label")
	}
}

func TestProbeIgnoresExtraParams(t *testing.T) {
	h := newTestProbeHandlers(t)

	req := httptest.NewRequest("GET",
		"/probe/metrics/resource?subscription=S&target=t&metric=avg_cpu_percent&name=custom&metricNamespace=ns", nil)
	rec := httptest.NewRecorder()

	h.Resource(rec, req)

	body := rec.Body.String()
	if strings.Contains(body, "custom") || strings.Contains(body, `"ns"`) {
		t.Error("name and metricNamespace must not appear in output")
	}
	if !strings.Contains(body, "azure_sql_avg_cpu_percent{") {
		t.Error("body missing azure_sql_avg_cpu_percent")
	}
}

func TestProbeRegister(t *testing.T) {
	h := newTestProbeHandlers(t)

	mux := http.NewServeMux()
	h.Register(mux)

	req := httptest.NewRequest("GET", "/probe/metrics/resource", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
