package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/whatap/mock-azure-exporter/internal/exporter"
	"github.com/whatap/mock-azure-exporter/internal/metrics"
)

// expositionContentType matches what real azure-metrics-exporter sends.
const expositionContentType = "text/plain; version=0.0.4; charset=utf-8"

// ProbeHandlers provides the Azure-style resource probe endpoint.
type ProbeHandlers struct {
	gen *exporter.Generator
}

// NewProbeHandlers creates handlers for the probe endpoint.
func NewProbeHandlers(gen *exporter.Generator) *ProbeHandlers {
	return &ProbeHandlers{gen: gen}
}

// Register adds probe routes to the mux.
func (h *ProbeHandlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /probe/metrics/resource", h.Resource)
}

// Resource fabricates resource metrics for the given query parameters. A
// missing required parameter is not an HTTP error: the response is an
// error-shaped metrics payload with status 200, which is what agents under
// test need to parse.
func (h *ProbeHandlers) Resource(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := exporter.Params{
		Subscription:    q.Get("subscription"),
		Target:          q.Get("target"),
		Metric:          q.Get("metric"),
		Interval:        q.Get("interval"),
		Aggregation:     q.Get("aggregation"),
		Name:            q.Get("name"),
		MetricNamespace: q.Get("metricNamespace"),
	}

	// Defaults apply before the required-parameter check so they are echoed
	// in the error payload too.
	if p.Interval == "" {
		p.Interval = "PT1M"
	}
	if p.Aggregation == "" {
		p.Aggregation = "average"
	}

	slog.Info("probe request",
		"subscription", p.Subscription,
		"target", p.Target,
		"metric", p.Metric,
		"interval", p.Interval,
		"aggregation", p.Aggregation,
	)

	w.Header().Set("Content-Type", expositionContentType)

	if !p.HasRequired() {
		metrics.ProbeRequestsTotal.WithLabelValues("missing_parameters").Inc()
		if _, err := io.WriteString(w, h.gen.ErrorText(p)); err != nil {
			slog.Warn("failed to write probe error response", "error", err)
		}
		return
	}

	metrics.ProbeRequestsTotal.WithLabelValues("ok").Inc()
	metrics.ProbeMetricEntries.Observe(float64(len(strings.Split(p.Metric, ","))))

	if _, err := io.WriteString(w, h.gen.Generate(p)); err != nil {
		slog.Warn("failed to write probe response", "error", err)
	}
}
