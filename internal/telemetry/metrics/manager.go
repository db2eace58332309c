package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// analysis sources, used as label values for CounterAnalyses
const (
	SourceCompletion = "completion"
	SourceDemo       = "demo"
	SourceFallback   = "fallback"
	SourceCache      = "cache"
)

type Manager struct {
	// counters
	CounterRequests              *prometheus.CounterVec
	CounterHandleRequestPanic    prometheus.Counter
	CounterRateLimitedRequests   prometheus.Counter
	CounterAnalyses              *prometheus.CounterVec
	CounterCompletionFailures    prometheus.Counter
	CounterReportPersistFailures prometheus.Counter
	CounterLogbookEntries        *prometheus.CounterVec

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistAnalysisDuration     prometheus.Histogram
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("fitlog", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("fitlog", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})
	counterAnalyses := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "aicoach_analyses",
		Help:      "The total number of served ai coach analyses, by recommendation source",
	}, []string{"source"})
	counterCompletionFailures := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "aicoach_completion_failures",
		Help:      "The total number of failed completion calls that fell back to demo synthesis",
	})
	counterReportPersistFailures := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "aicoach_report_persist_failures",
		Help:      "The total number of analysis reports that could not be stored",
	})
	counterLogbookEntries := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "logbook_entries",
		Help:      "The total number of logged entries, by kind",
	}, []string{"kind"})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histAnalysisDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "aicoach_analysis_duration_seconds",
		Help:      "Duration of a single ai coach analysis in seconds",
		Buckets:   []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	})
	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})

	return &Manager{
		CounterRequests:              counterRequests,
		CounterHandleRequestPanic:    counterHandleRequestPanic,
		CounterRateLimitedRequests:   counterRateLimitedRequests,
		CounterAnalyses:              counterAnalyses,
		CounterCompletionFailures:    counterCompletionFailures,
		CounterReportPersistFailures: counterReportPersistFailures,
		CounterLogbookEntries:        counterLogbookEntries,
		GaugeRequests:                gaugeRequests,
		GaugeLifeSignal:              gaugeLifeSignal,
		HistAnalysisDuration:         histAnalysisDuration,
		HistogramRequestDuration:     histogramRequestDuration,
	}
}
