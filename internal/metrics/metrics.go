// Package metrics exposes Prometheus collectors for checklist generation
// and the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "checklist"

const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

type Metrics struct {
	registry *prometheus.Registry

	GenerationRuns     *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec
	GeneratedTasks     *prometheus.HistogramVec
	StatusUpdates      *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		GenerationRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_runs_total",
			Help:      "Questionnaire generation runs by flow and outcome.",
		}, []string{"flow", "outcome"}),
		GenerationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Time spent evaluating rules and synchronizing tasks.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"flow"}),
		GeneratedTasks: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generated_tasks",
			Help:      "Personalized tasks produced by one generation run.",
			Buckets:   []float64{0, 5, 10, 20, 40, 80},
		}, []string{"flow"}),
		StatusUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_status_updates_total",
			Help:      "Task status changes by resulting status.",
		}, []string{"status"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	m.registry.MustRegister(
		m.GenerationRuns,
		m.GenerationDuration,
		m.GeneratedTasks,
		m.StatusUpdates,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

func (m *Metrics) ObserveGeneration(flow string, ok bool, tasks int, elapsed time.Duration) {
	outcome := OutcomeOK
	if !ok {
		outcome = OutcomeFailed
	}
	m.GenerationRuns.WithLabelValues(flow, outcome).Inc()
	m.GenerationDuration.WithLabelValues(flow).Observe(elapsed.Seconds())
	if ok {
		m.GeneratedTasks.WithLabelValues(flow).Observe(float64(tasks))
	}
}

func (m *Metrics) ObserveStatusUpdate(status string) {
	m.StatusUpdates.WithLabelValues(status).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request counts and latency keyed by the matched
// route template, so path parameters do not explode label cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
