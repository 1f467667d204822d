package exporter

// Params holds the query parameters accepted by the resource probe. Fields
// are either present (non-empty) or absent; empty strings count as absent
// for the required-parameter check.
type Params struct {
	// Subscription is the Azure subscription ID
	Subscription string
	// Target is the Azure resource path (e.g. .../Microsoft.Sql/managedInstances/...)
	Target string
	// Metric is a comma-separated list of metric names
	Metric string
	// Interval is the ISO-8601 query interval (e.g. PT1M, PT5M)
	Interval string
	// Aggregation is the aggregation method (e.g. average, maximum)
	Aggregation string
	// Name is a custom metric name; accepted but never emitted
	Name string
	// MetricNamespace is the Azure metric namespace; accepted but never emitted
	MetricNamespace string
}

// HasRequired reports whether subscription, target, and metric are all present.
func (p Params) HasRequired() bool {
	return p.Subscription != "" && p.Target != "" && p.Metric != ""
}
