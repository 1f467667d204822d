package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/whatap/mock-azure-exporter/internal/exporter"
)

// MetricsHandlers provides the baseline /metrics endpoint and the exporter's
// own telemetry at /debug/metrics.
type MetricsHandlers struct {
	gen *exporter.Generator
}

// NewMetricsHandlers creates handlers for the metrics endpoints.
func NewMetricsHandlers(gen *exporter.Generator) *MetricsHandlers {
	return &MetricsHandlers{gen: gen}
}

// Register adds metrics routes to the mux.
func (h *MetricsHandlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /metrics", h.Metrics)
	mux.Handle("GET /debug/metrics", promhttp.Handler())
}

// Metrics serves the fabricated baseline text: no resource section, only the
// always-present metric families.
func (h *MetricsHandlers) Metrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", expositionContentType)
	if _, err := io.WriteString(w, h.gen.Generate(exporter.Params{})); err != nil {
		slog.Warn("failed to write metrics response", "error", err)
	}
}
