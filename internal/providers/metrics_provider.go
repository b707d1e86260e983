package providers

import (
	"cardmirror/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits(track string)
	IncCacheMisses(track string)
	IncCacheEvictions(track string)
	IncAPICall(endpoint string)
	ObserveGateWait(duration time.Duration)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	cacheEvictions  *prometheus.CounterVec
	apiCalls        *prometheus.CounterVec
	gateWait        prometheus.Histogram
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits(track string) {
	m.cacheHits.WithLabelValues(track).Inc()
}

func (m *MetricsProvider) IncCacheMisses(track string) {
	m.cacheMisses.WithLabelValues(track).Inc()
}

func (m *MetricsProvider) IncCacheEvictions(track string) {
	m.cacheEvictions.WithLabelValues(track).Inc()
}

func (m *MetricsProvider) IncAPICall(endpoint string) {
	m.apiCalls.WithLabelValues(endpoint).Inc()
}

func (m *MetricsProvider) ObserveGateWait(duration time.Duration) {
	m.gateWait.Observe(duration.Seconds())
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cardmirror_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cardmirror_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cardmirror_cache_hits_total",
			Help: "Card-data cache hits per track",
		}, []string{"track"}),

		cacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cardmirror_cache_misses_total",
			Help: "Card-data cache misses per track",
		}, []string{"track"}),

		cacheEvictions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cardmirror_cache_evictions_total",
			Help: "Lazy expiries removed on read per track",
		}, []string{"track"}),

		apiCalls: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cardmirror_api_calls_total",
			Help: "Outbound external API calls per endpoint",
		}, []string{"endpoint"}),

		gateWait: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "cardmirror_gate_wait_seconds",
			Help:    "Time spent waiting on the outbound rate gate",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits(_ string)                            {}
func (n *noopMetrics) IncCacheMisses(_ string)                          {}
func (n *noopMetrics) IncCacheEvictions(_ string)                       {}
func (n *noopMetrics) IncAPICall(_ string)                              {}
func (n *noopMetrics) ObserveGateWait(_ time.Duration)                  {}
