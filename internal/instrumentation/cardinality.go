package instrumentation

// Cardinality management helpers for metrics.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// # Warning
//
// High cardinality in metrics can cause:
// - Increased memory usage in Prometheus/metrics backends
// - Slower query performance
// - Higher storage costs
//
// Search queries, tweet text and tweet IDs must never become label values.
// Metrics carry only the fixed operation names below plus status/kind labels.

// Operation names for Twitter API metrics.
// Status and Service constants are defined in config.go.
const (
	OperationCreateTweet = "create_tweet"
	OperationSearch      = "search_recent"
	OperationLookupUser  = "lookup_user"
	OperationDeleteTweet = "delete_tweet"
)

// maxQueryLogLength bounds how much of a user-supplied search query is
// echoed into debug logs.
const maxQueryLogLength = 128

// TruncateQuery shortens a user-supplied search query for debug logging so
// arbitrarily long input cannot bloat log lines. Never use the result as a
// metric label.
func TruncateQuery(query string) string {
	if len(query) <= maxQueryLogLength {
		return query
	}
	return query[:maxQueryLogLength] + "..."
}
