// Package metrics exposes Prometheus collectors for the scoring service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the service's collectors. Built against an injected
// registry so tests can construct isolated instances without tripping
// duplicate-registration panics on the global registry.
type Metrics struct {
	registry *prometheus.Registry

	requestDuration  *prometheus.HistogramVec
	scoreSubmissions *prometheus.CounterVec
	spectatorVotes   *prometheus.CounterVec
}

func New(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests handled by the scoring API.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		scoreSubmissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "judge_score_submissions_total",
				Help: "Judge score submissions, including autosave resubmissions.",
			},
			[]string{"judge_id"},
		),
		spectatorVotes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spectator_votes_total",
				Help: "Spectator vote submissions by outcome.",
			},
			[]string{"outcome"},
		),
	}
}

// Middleware records per-request latency labeled by route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler serves the /metrics scrape endpoint for this registry.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func (m *Metrics) RecordScoreSubmission(judgeID string) {
	m.scoreSubmissions.WithLabelValues(judgeID).Inc()
}

// RecordSpectatorVote tracks outcomes: accepted, duplicate or error.
func (m *Metrics) RecordSpectatorVote(outcome string) {
	m.spectatorVotes.WithLabelValues(outcome).Inc()
}
