package handlers

import (
	"io"
	"log/slog"
	"net/http"
)

const welcomeText = `Mock Azure Metrics Exporter

Fabricates azure-metrics-exporter style Prometheus output so monitoring
agents can be tested against parameterized scrape targets without calling
any cloud API.

Available endpoints:
- GET /metrics - Prometheus format metrics (baseline, no parameters)
- GET /probe/metrics/resource - Azure-style metrics endpoint (requires parameters)
- GET /debug/params - Echo received query parameters as JSON
- GET /debug/metrics - Exporter self-telemetry
- GET /health - Health check
- GET / - This welcome message

Example with parameters:
/probe/metrics/resource?subscription=test-sub&target=Microsoft.Sql/test&metric=avg_cpu_percent,virtual_core_count&interval=PT1M&aggregation=average
`

// RootHandlers provides the welcome and health endpoints.
type RootHandlers struct{}

// NewRootHandlers creates handlers for the root and health endpoints.
func NewRootHandlers() *RootHandlers {
	return &RootHandlers{}
}

// Register adds root routes to the mux.
func (h *RootHandlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /health", h.Health)
}

// Root serves the static welcome message.
func (h *RootHandlers) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, welcomeText); err != nil {
		slog.Warn("failed to write welcome response", "error", err)
	}
}

// Health serves the plain-text health check.
func (h *RootHandlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, "OK"); err != nil {
		slog.Warn("failed to write health response", "error", err)
	}
}
