package exporter

import (
	"fmt"
	"strings"
)

// resourceRule maps a substring of the target path to a resource_type label.
type resourceRule struct {
	substring    string
	resourceType string
}

// resourceRules are evaluated in order; first match wins.
var resourceRules = []resourceRule{
	{"Microsoft.Sql/managedInstances", "sql_managed_instance"},
	{"Microsoft.Compute/virtualMachines", "virtual_machine"},
	{"Microsoft.Storage/storageAccounts", "storage_account"},
}

// ClassifyResource maps an Azure resource target path to a resource_type
// label. Unmatched targets fall through to "unknown"; that is intended
// behavior, not an error.
func ClassifyResource(target string) string {
	for _, rule := range resourceRules {
		if strings.Contains(target, rule.substring) {
			return rule.resourceType
		}
	}
	return "unknown"
}

// metricRule binds a metric-name predicate to the block it emits. Rules are
// evaluated in order and the first match wins, so the priority order is
// auditable here rather than buried in a handler.
type metricRule struct {
	match func(name string) bool
	emit  func(lines []string, name, resourceType string, p Params, ts int64) []string
}

var metricRules = []metricRule{
	{
		match: exact("avg_cpu_percent"),
		emit: func(lines []string, name, resourceType string, p Params, ts int64) []string {
			return append(lines,
				"# HELP azure_sql_avg_cpu_percent Average CPU percentage from Azure API",
				"# TYPE azure_sql_avg_cpu_percent gauge",
				fmt.Sprintf("azure_sql_avg_cpu_percent%s %.2f %d", sqlLabels(resourceType, p), randFloat(20.0, 80.0), ts),
				"",
			)
		},
	},
	{
		match: exact("virtual_core_count"),
		emit: func(lines []string, name, resourceType string, p Params, ts int64) []string {
			return append(lines,
				"# HELP azure_sql_virtual_core_count Virtual core count from Azure API",
				"# TYPE azure_sql_virtual_core_count gauge",
				fmt.Sprintf("azure_sql_virtual_core_count%s %d %d", sqlLabels(resourceType, p), randInt(2, 16), ts),
				"",
			)
		},
	},
	{
		match: exact("memory_usage_percent"),
		emit: func(lines []string, name, resourceType string, p Params, ts int64) []string {
			return append(lines,
				"# HELP azure_sql_memory_usage_percent Memory usage percentage from Azure API",
				"# TYPE azure_sql_memory_usage_percent gauge",
				fmt.Sprintf("azure_sql_memory_usage_percent%s %.2f %d", sqlLabels(resourceType, p), randFloat(40.0, 85.0), ts),
				"",
			)
		},
	},
	{
		match: containsFold("cpu"),
		emit: func(lines []string, name, resourceType string, p Params, ts int64) []string {
			return append(lines,
				fmt.Sprintf("# HELP azure_vm_cpu_percent %s from Azure API", name),
				"# TYPE azure_vm_cpu_percent gauge",
				fmt.Sprintf("azure_vm_cpu_percent%s %.2f %d", vmLabels(name, resourceType, p), randFloat(15.0, 75.0), ts),
				"",
			)
		},
	},
	{
		match: func(string) bool { return true },
		emit: func(lines []string, name, resourceType string, p Params, ts int64) []string {
			return append(lines,
				fmt.Sprintf("# HELP azure_unknown_metric Unknown metric %s from Azure API", name),
				"# TYPE azure_unknown_metric gauge",
				fmt.Sprintf("azure_unknown_metric%s %.2f %d", vmLabels(name, resourceType, p), randFloat(0.0, 100.0), ts),
				"",
			)
		},
	},
}

// ruleFor returns the first matching rule. The final catch-all always matches.
func ruleFor(name string) metricRule {
	for _, rule := range metricRules {
		if rule.match(name) {
			return rule
		}
	}
	return metricRules[len(metricRules)-1]
}

func exact(want string) func(string) bool {
	return func(name string) bool { return name == want }
}

func containsFold(sub string) func(string) bool {
	return func(name string) bool {
		return strings.Contains(strings.ToLower(name), strings.ToLower(sub))
	}
}

// sqlLabels renders the label set shared by the SQL metric families. Values
// are inserted verbatim; callers supplying label-delimiter characters get
// malformed but literally-reproduced output.
func sqlLabels(resourceType string, p Params) string {
	return fmt.Sprintf(`{subscription="%s",resource_type="%s",aggregation="%s",interval="%s"}`,
		p.Subscription, resourceType, p.Aggregation, p.Interval)
}

// vmLabels renders the label set for VM and unknown metric families, which
// additionally carry the requested metric name.
func vmLabels(name, resourceType string, p Params) string {
	return fmt.Sprintf(`{subscription="%s",resource_type="%s",metric_name="%s",aggregation="%s",interval="%s"}`,
		p.Subscription, resourceType, name, p.Aggregation, p.Interval)
}
