// Package metrics holds the Prometheus collectors of the server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application. It implements
// profile.Recorder and jobs.Recorder.
type Metrics struct {
	ProfileSaves       *prometheus.CounterVec
	ProfileHydrations  *prometheus.CounterVec
	CascadeTransitions *prometheus.CounterVec
	PostingsCreated    prometheus.Counter
	RequestDuration    *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New creates the metrics and registers them on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := newWith(reg)
	m.gatherer = reg
	return m
}

func newWith(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ProfileSaves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "jobz_profile_saves_total",
			Help: "Profile save attempts by track and outcome",
		}, []string{"track", "outcome"}),
		ProfileHydrations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "jobz_profile_hydrations_total",
			Help: "Profile drafts hydrated from storage by track",
		}, []string{"track"}),
		CascadeTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "jobz_cascade_transitions_total",
			Help: "Role picker transitions by event kind and whether they applied",
		}, []string{"kind", "applied"}),
		PostingsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "jobz_job_postings_created_total",
			Help: "Total number of job postings created",
		}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "jobz_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern, method and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
}

func (m *Metrics) ProfileHydrated(track string) {
	m.ProfileHydrations.WithLabelValues(track).Inc()
}

func (m *Metrics) ProfileSaved(track, outcome string) {
	m.ProfileSaves.WithLabelValues(track, outcome).Inc()
}

func (m *Metrics) PostingCreated() {
	m.PostingsCreated.Inc()
}

// CascadeTransition counts one picker event.
func (m *Metrics) CascadeTransition(kind string, applied bool) {
	m.CascadeTransitions.WithLabelValues(kind, strconv.FormatBool(applied)).Inc()
}

// ObserveRequest records the latency of one request.
func (m *Metrics) ObserveRequest(route, method string, status int, d time.Duration) {
	m.RequestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
