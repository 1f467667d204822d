package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func newTestDebugHandlers(t *testing.T) *DebugHandlers {
	t.Helper()
	return NewDebugHandlers(clockwork.NewFakeClockAt(time.Unix(1700000000, 0)))
}

func decodeDebugResponse(t *testing.T, rec *httptest.ResponseRecorder) DebugParamsResponse {
	t.Helper()
	var resp DebugParamsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return resp
}

func TestDebugParamsPartial(t *testing.T) {
	h := newTestDebugHandlers(t)

	req := httptest.NewRequest("GET", "/debug/params?subscription=a&target=b", nil)
	rec := httptest.NewRecorder()

	h.Params(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	resp := decodeDebugResponse(t, rec)

	if resp.ParameterCount != 2 {
		t.Errorf("parameter_count = %d, want 2", resp.ParameterCount)
	}
	if resp.RequiredParamsPresent {
		t.Error("required_params_present = true, want false (metric absent)")
	}
	if resp.ReceivedParameters.Subscription == nil || *resp.ReceivedParameters.Subscription != "a" {
		t.Errorf("subscription = %v, want \"a\"", resp.ReceivedParameters.Subscription)
	}
	if resp.ReceivedParameters.Metric != nil {
		t.Errorf("metric = %v, want null", resp.ReceivedParameters.Metric)
	}
	if resp.Timestamp != 1700000000 {
		t.Errorf("timestamp = %d, want 1700000000", resp.Timestamp)
	}
}

func TestDebugParamsAllPresent(t *testing.T) {
	h := newTestDebugHandlers(t)

	req := httptest.NewRequest("GET",
		"/debug/params?subscription=a&target=b&metric=c&interval=PT1M&aggregation=average", nil)
	rec := httptest.NewRecorder()

	h.Params(rec, req)

	resp := decodeDebugResponse(t, rec)

	if resp.ParameterCount != 5 {
		t.Errorf("parameter_count = %d, want 5", resp.ParameterCount)
	}
	if !resp.RequiredParamsPresent {
		t.Error("required_params_present = false, want true")
	}
}

func TestDebugParamsEmptyValueDistinctFromAbsent(t *testing.T) {
	h := newTestDebugHandlers(t)

	req := httptest.NewRequest("GET", "/debug/params?subscription=", nil)
	rec := httptest.NewRecorder()

	h.Params(rec, req)

	resp := decodeDebugResponse(t, rec)

	// Present-but-empty echoes as "" but does not count toward the total.
	if resp.ReceivedParameters.Subscription == nil || *resp.ReceivedParameters.Subscription != "" {
		t.Errorf("subscription = %v, want pointer to empty string", resp.ReceivedParameters.Subscription)
	}
	if resp.ParameterCount != 0 {
		t.Errorf("parameter_count = %d, want 0", resp.ParameterCount)
	}
	if resp.RequiredParamsPresent {
		t.Error("required_params_present = true, want false")
	}
}

func TestDebugParamsNone(t *testing.T) {
	h := newTestDebugHandlers(t)

	req := httptest.NewRequest("GET", "/debug/params", nil)
	rec := httptest.NewRecorder()

	h.Params(rec, req)

	resp := decodeDebugResponse(t, rec)

	if resp.ParameterCount != 0 {
		t.Errorf("parameter_count = %d, want 0", resp.ParameterCount)
	}
	for name, v := range map[string]*string{
		"subscription": resp.ReceivedParameters.Subscription,
		"target":       resp.ReceivedParameters.Target,
		"metric":       resp.ReceivedParameters.Metric,
		"interval":     resp.ReceivedParameters.Interval,
		"aggregation":  resp.ReceivedParameters.Aggregation,
	} {
		if v != nil {
			t.Errorf("%s = %q, want null", name, *v)
		}
	}
}

func TestDebugRegister(t *testing.T) {
	h := newTestDebugHandlers(t)

	mux := http.NewServeMux()
	h.Register(mux)

	req := httptest.NewRequest("GET", "/debug/params?metric=c", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want \"application/json\"", ct)
	}
}
