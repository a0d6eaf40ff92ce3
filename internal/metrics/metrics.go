package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the site's Prometheus collectors on a private registry so
// several servers (tests, CLI) can coexist in one process.
type Metrics struct {
	Registry *prometheus.Registry

	// Page responses by route pattern and status code
	PageRenders *prometheus.CounterVec

	// Handler latency by route pattern
	RenderLatency *prometheus.HistogramVec

	// Content reload outcomes
	ContentReloads *prometheus.CounterVec

	// Posts currently loaded per collection
	PostsLoaded *prometheus.GaugeVec

	// Markdown render cache lookups
	MarkdownCache *prometheus.CounterVec

	// Panics caught by the dashboard error boundary
	RecoveredPanics prometheus.Counter
}

// New creates a Metrics instance with every collector registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		PageRenders: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "zkevmsite_http_responses_total",
			Help: "HTTP responses by route pattern and status code",
		}, []string{"route", "status"}),

		RenderLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "zkevmsite_http_duration_seconds",
			Help:    "Time spent serving a request by route pattern",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),

		ContentReloads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "zkevmsite_content_reloads_total",
			Help: "Content reloads by collection and outcome",
		}, []string{"collection", "outcome"}), // outcome: "ok", "error"

		PostsLoaded: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "zkevmsite_content_posts",
			Help: "Markdown documents currently loaded per collection",
		}, []string{"collection"}),

		MarkdownCache: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "zkevmsite_markdown_cache_total",
			Help: "Markdown render cache lookups by result",
		}, []string{"result"}), // result: "hit", "miss"

		RecoveredPanics: factory.NewCounter(prometheus.CounterOpts{
			Name: "zkevmsite_recovered_panics_total",
			Help: "Panics converted into error pages",
		}),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.PageRenders.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.RenderLatency.WithLabelValues(route).Observe(d.Seconds())
}

// ObserveReload records a content reload and the resulting document count.
func (m *Metrics) ObserveReload(collection string, posts int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.ContentReloads.WithLabelValues(collection, "error").Inc()
		return
	}
	m.ContentReloads.WithLabelValues(collection, "ok").Inc()
	m.PostsLoaded.WithLabelValues(collection).Set(float64(posts))
}

// CacheHit counts a markdown cache hit.
func (m *Metrics) CacheHit() {
	if m != nil {
		m.MarkdownCache.WithLabelValues("hit").Inc()
	}
}

// CacheMiss counts a markdown cache miss.
func (m *Metrics) CacheMiss() {
	if m != nil {
		m.MarkdownCache.WithLabelValues("miss").Inc()
	}
}

// IncrementRecoveredPanics counts a panic turned into an error page.
func (m *Metrics) IncrementRecoveredPanics() {
	if m != nil {
		m.RecoveredPanics.Inc()
	}
}
