package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jonboulle/clockwork"
)

// DebugHandlers provides the /debug/params endpoint.
type DebugHandlers struct {
	clock clockwork.Clock
}

// NewDebugHandlers creates handlers for the debug endpoint.
func NewDebugHandlers(clock clockwork.Clock) *DebugHandlers {
	return &DebugHandlers{clock: clock}
}

// Register adds debug routes to the mux.
func (h *DebugHandlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /debug/params", h.Params)
}

// ReceivedParameters echoes the relevant query parameters. A field is null
// when the key was absent from the query string; an empty string means the
// key was present with no value.
type ReceivedParameters struct {
	Subscription *string `json:"subscription"`
	Target       *string `json:"target"`
	Metric       *string `json:"metric"`
	Interval     *string `json:"interval"`
	Aggregation  *string `json:"aggregation"`
}

// DebugParamsResponse is the JSON response for /debug/params.
type DebugParamsResponse struct {
	ReceivedParameters    ReceivedParameters `json:"received_parameters"`
	ParameterCount        int                `json:"parameter_count"`
	RequiredParamsPresent bool               `json:"required_params_present"`
	Timestamp             int64              `json:"timestamp"`
}

// Params reports what the server received, for debugging agents that build
// probe URLs.
func (h *DebugHandlers) Params(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	received := ReceivedParameters{
		Subscription: queryValue(q, "subscription"),
		Target:       queryValue(q, "target"),
		Metric:       queryValue(q, "metric"),
		Interval:     queryValue(q, "interval"),
		Aggregation:  queryValue(q, "aggregation"),
	}

	count := 0
	for _, v := range []*string{received.Subscription, received.Target, received.Metric, received.Interval, received.Aggregation} {
		if v != nil && *v != "" {
			count++
		}
	}

	resp := DebugParamsResponse{
		ReceivedParameters:    received,
		ParameterCount:        count,
		RequiredParamsPresent: q.Get("subscription") != "" && q.Get("target") != "" && q.Get("metric") != "",
		Timestamp:             h.clock.Now().Unix(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Warn("failed to encode debug params response", "error", err)
	}
}

func queryValue(q url.Values, key string) *string {
	if !q.Has(key) {
		return nil
	}
	v := q.Get(key)
	return &v
}
