package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameCasesOpened      = "cases_opened_total"
	MetricNameCaseOpenSpend    = "case_open_spend_total"
	MetricNameRewardsDrawn     = "rewards_drawn_total"
	MetricNameOpenFailures     = "case_open_failures_total"
	MetricNameConnectedClients = "sse_connected_clients"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextCasesOpened      = "Total number of cases opened"
	HelpTextCaseOpenSpend    = "Total coins spent opening cases"
	HelpTextRewardsDrawn     = "Total reward items drawn, by rarity tier"
	HelpTextOpenFailures     = "Total rejected or failed case-open requests, by reason"
	HelpTextConnectedClients = "Current number of connected SSE clients"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelCase   = "case"
	LabelRarity = "rarity"
	LabelReason = "reason"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
