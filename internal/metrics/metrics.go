package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Submission Metrics
var (
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSubmissionsTotal,
			Help: HelpTextSubmissionsTotal,
		},
		[]string{LabelKind, LabelCode},
	)

	SubmissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSubmissionDuration,
			Help:    HelpTextSubmissionDuration,
			Buckets: SubmissionLatencyBuckets,
		},
	)
)

// Dialog Metrics
var (
	DialogTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDialogTransitions,
			Help: HelpTextDialogTransitions,
		},
		[]string{LabelFrom, LabelTo},
	)

	WorkspacesOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameWorkspacesOpen,
			Help: HelpTextWorkspacesOpen,
		},
	)

	WorkspacesEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWorkspacesEvicted,
			Help: HelpTextWorkspacesEvicted,
		},
	)

	CloseSuppressed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCloseSuppressed,
			Help: HelpTextCloseSuppressed,
		},
	)
)

// Cache Metrics
var (
	GameweekCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGameweekCacheHits,
			Help: HelpTextGameweekCacheHits,
		},
	)

	GameweekCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGameweekCacheMisses,
			Help: HelpTextGameweekCacheMisses,
		},
	)
)

// Push Metrics
var (
	EventsPushed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPushed,
			Help: HelpTextEventsPushed,
		},
		[]string{LabelType},
	)
)
