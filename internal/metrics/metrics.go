// path: internal/metrics/metrics.go

// Package metrics exposes Prometheus instruments for evolution checks.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonklee99/PKHeX-Gengar/internal/evolution"
)

// Recorder owns a registry and the instruments registered on it.
type Recorder struct {
	registry *prometheus.Registry

	verdicts   *prometheus.CounterVec
	duration   prometheus.Histogram
	violations *prometheus.CounterVec
	requests   *prometheus.CounterVec
}

// New builds a Recorder on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		verdicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "evocheck_verdicts_total",
			Help: "Move-evolution verdicts by deciding reason and validity",
		}, []string{"reason", "valid"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "evocheck_evaluation_duration_seconds",
			Help:    "Time spent evaluating a move-evolution check",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		violations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "evocheck_contract_violations_total",
			Help: "Calls rejected for violating an operation contract",
		}, []string{"operation"}),
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "evocheck_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"route", "code"}),
	}
}

// ObserveVerdict records a completed evaluation.
func (r *Recorder) ObserveVerdict(v evolution.Verdict, elapsed time.Duration) {
	r.verdicts.WithLabelValues(v.Reason.String(), strconv.FormatBool(v.Valid)).Inc()
	r.duration.Observe(elapsed.Seconds())
}

// ContractViolation records a rejected call to operation.
func (r *Recorder) ContractViolation(operation string) {
	r.violations.WithLabelValues(operation).Inc()
}

// Request records an HTTP response.
func (r *Recorder) Request(route string, code int) {
	r.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }
