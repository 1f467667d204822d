// Package exporter fabricates Prometheus exposition text shaped like
// azure-metrics-exporter output. It never talks to any cloud API; sample
// values are drawn at random per call while the structure is fully
// determined by the request parameters.
package exporter

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"
)

// Generator produces exposition text. The start timestamp is captured once
// at construction and reported unchanged for the generator's lifetime; it is
// never mutated afterwards, so no synchronization is needed.
type Generator struct {
	clock     clockwork.Clock
	startTime int64
}

// New creates a generator using the real clock.
func New() *Generator {
	return NewWithClock(clockwork.NewRealClock())
}

// NewWithClock creates a generator with a custom clock for testing.
func NewWithClock(clock clockwork.Clock) *Generator {
	return &Generator{
		clock:     clock,
		startTime: clock.Now().Unix(),
	}
}

// StartTime returns the Unix timestamp captured at construction.
func (g *Generator) StartTime() int64 {
	return g.startTime
}

// Generate renders the full exposition text. The baseline families are always
// emitted in fixed order; the resource section is appended only when the
// required parameters (subscription, target, metric) are all present.
func (g *Generator) Generate(p Params) string {
	ts := g.clock.Now().Unix()

	lines := make([]string, 0, 64)
	lines = append(lines,
		"# HELP up Server status (1=up, 0=down)",
		"# TYPE up gauge",
		fmt.Sprintf("up 1 %d", ts),
		"",
		"# HELP server_start_time Server start timestamp",
		"# TYPE server_start_time gauge",
		fmt.Sprintf("server_start_time %d %d", g.startTime, ts),
		"",
		"# HELP system_cpu_usage CPU usage percentage",
		"# TYPE system_cpu_usage gauge",
		fmt.Sprintf("system_cpu_usage %.2f %d", randFloat(10.0, 90.0), ts),
		"",
		"# HELP system_memory_used_bytes Memory usage in bytes",
		"# TYPE system_memory_used_bytes gauge",
		fmt.Sprintf("system_memory_used_bytes %d %d", randInt64(1_000_000_000, 8_000_000_000), ts),
		"",
		"# HELP http_requests_total HTTP requests counter",
		"# TYPE http_requests_total counter",
		fmt.Sprintf(`http_requests_total{method="GET",status="200"} %d %d`, randInt(100, 1000), ts),
		fmt.Sprintf(`http_requests_total{method="POST",status="200"} %d %d`, randInt(50, 500), ts),
		fmt.Sprintf(`http_requests_total{method="GET",status="404"} %d %d`, randInt(1, 50), ts),
		"",
	)

	if p.HasRequired() {
		resourceType := ClassifyResource(p.Target)

		// Duplicates are permitted; each entry produces its own block.
		for _, name := range strings.Split(p.Metric, ",") {
			name = strings.TrimSpace(name)
			lines = ruleFor(name).emit(lines, name, resourceType, p, ts)
		}

		lines = append(lines,
			"# HELP azure_exporter_scrape_duration_seconds Time spent scraping Azure API",
			"# TYPE azure_exporter_scrape_duration_seconds gauge",
			fmt.Sprintf(`azure_exporter_scrape_duration_seconds{subscription="%s"} %.3f %d`, p.Subscription, randFloat(0.1, 2.0), ts),
			"",
			"# HELP azure_exporter_scrape_success Whether the Azure API scrape was successful",
			"# TYPE azure_exporter_scrape_success gauge",
			fmt.Sprintf(`azure_exporter_scrape_success{subscription="%s"} 1 %d`, p.Subscription, ts),
			"",
		)
	}

	return strings.Join(lines, "\n")
}

// ErrorText renders the payload returned when a required parameter is
// missing. The generator proper is bypassed; the caller still responds with
// HTTP 200. Defaults for interval and aggregation have already been applied
// by the caller and are echoed here.
func (g *Generator) ErrorText(p Params) string {
	ts := g.clock.Now().Unix()

	subscription := p.Subscription
	if subscription == "" {
		subscription = "missing"
	}
	infoSubscription := p.Subscription
	if infoSubscription == "" {
		infoSubscription = "none"
	}

	lines := []string{
		"# HELP azure_exporter_error Error in Azure exporter",
		"# TYPE azure_exporter_error gauge",
		fmt.Sprintf(`azure_exporter_error{reason="missing_required_parameters",subscription="%s",target_provided="%s",metric_provided="%s"} 1 %d`,
			subscription, strconv.FormatBool(p.Target != ""), strconv.FormatBool(p.Metric != ""), ts),
		"",
		"# HELP azure_exporter_request_info Information about the request",
		"# TYPE azure_exporter_request_info gauge",
		fmt.Sprintf(`azure_exporter_request_info{subscription="%s",has_target="%s",has_metric="%s",interval="%s",aggregation="%s"} 0 %d`,
			infoSubscription, strconv.FormatBool(p.Target != ""), strconv.FormatBool(p.Metric != ""), p.Interval, p.Aggregation, ts),
		"",
	}
	return strings.Join(lines, "\n")
}

func randFloat(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

func randInt(min, max int) int {
	return min + rand.IntN(max-min+1)
}

func randInt64(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}
