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

// Business Metrics
var (
	CasesOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCasesOpened,
			Help: HelpTextCasesOpened,
		},
		[]string{LabelCase},
	)

	CaseOpenSpend = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCaseOpenSpend,
			Help: HelpTextCaseOpenSpend,
		},
	)

	RewardsDrawn = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsDrawn,
			Help: HelpTextRewardsDrawn,
		},
		[]string{LabelRarity},
	)

	OpenFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOpenFailures,
			Help: HelpTextOpenFailures,
		},
		[]string{LabelReason},
	)
)

// Realtime Metrics
var (
	ConnectedClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameConnectedClients,
			Help: HelpTextConnectedClients,
		},
	)
)
