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
	MetricNameItemsPurchased    = "items_purchased_total"
	MetricNameItemsSold         = "items_sold_total"
	MetricNameItemsEquipped     = "items_equipped_total"
	MetricNameItemsUnequipped   = "items_unequipped_total"
	MetricNameCharactersCreated = "characters_created_total"
	MetricNameGoldSpent         = "gold_spent_total"
	MetricNameGoldEarned        = "gold_earned_total"
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
	HelpTextItemsPurchased    = "Total number of items purchased from the shop"
	HelpTextItemsSold         = "Total number of items sold to the shop"
	HelpTextItemsEquipped     = "Total number of items equipped"
	HelpTextItemsUnequipped   = "Total number of items unequipped"
	HelpTextCharactersCreated = "Total number of characters created"
	HelpTextGoldSpent         = "Total gold spent on purchases"
	HelpTextGoldEarned        = "Total gold earned from sales"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelItem   = "item"
	LabelSlot   = "slot"
)

// HTTPLatencyBuckets are the histogram buckets for request duration, in
// seconds.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
