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

// Submission metric names
const (
	MetricNameSubmissionsTotal   = "matchday_submissions_total"
	MetricNameSubmissionDuration = "matchday_submission_duration_seconds"
)

// Dialog and workspace metric names
const (
	MetricNameDialogTransitions = "matchday_dialog_transitions_total"
	MetricNameWorkspacesOpen    = "matchday_workspaces_open"
	MetricNameWorkspacesEvicted = "matchday_workspaces_evicted_total"
	MetricNameCloseSuppressed   = "matchday_dialog_close_suppressed_total"
)

// Cache metric names
const (
	MetricNameGameweekCacheHits   = "matchday_gameweek_cache_hits_total"
	MetricNameGameweekCacheMisses = "matchday_gameweek_cache_misses_total"
)

// Push metric names
const (
	MetricNameEventsPushed = "matchday_events_pushed_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextSubmissionsTotal   = "Prediction submissions by outcome kind and error code"
	HelpTextSubmissionDuration = "Latency of the remote submit-predictions call in seconds"

	HelpTextDialogTransitions = "Participation dialog phase transitions"
	HelpTextWorkspacesOpen    = "Workspaces currently held in memory"
	HelpTextWorkspacesEvicted = "Workspaces evicted after being idle"
	HelpTextCloseSuppressed   = "Close requests rejected while a retryable error is displayed"

	HelpTextGameweekCacheHits   = "Gameweek lookups served from cache"
	HelpTextGameweekCacheMisses = "Gameweek lookups that went to the backend"

	HelpTextEventsPushed = "Events pushed to SSE clients by type"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelKind   = "kind"
	LabelCode   = "code"
	LabelFrom   = "from"
	LabelTo     = "to"
	LabelType   = "type"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets covers fast local handlers up to slow upstream calls
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SubmissionLatencyBuckets is skewed towards the backend's balance debit path
var SubmissionLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30}
