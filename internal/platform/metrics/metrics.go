package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application collectors. A nil *Metrics is valid and records nothing,
// so services can be built without it in tests.
type Metrics struct {
	registry *prometheus.Registry

	requests       *prometheus.CounterVec
	leaveDebits    *prometheus.CounterVec
	debitRefusals  *prometheus.CounterVec
	debitRetries   prometheus.Counter
	onlineAccounts prometheus.Gauge
}

// New creates the collectors on a private registry together with the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fieldops",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "status"}),
		leaveDebits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fieldops",
			Name:      "leave_debits_total",
			Help:      "Leave days debited, by pool.",
		}, []string{"pool"}),
		debitRefusals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fieldops",
			Name:      "leave_debit_refusals_total",
			Help:      "Debits refused, by reason.",
		}, []string{"reason"}),
		debitRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fieldops",
			Name:      "leave_debit_retries_total",
			Help:      "Debit attempts retried after a concurrent balance change.",
		}),
		onlineAccounts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fieldops",
			Name:      "online_accounts",
			Help:      "Accounts with at least one live connection.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.leaveDebits,
		m.debitRefusals,
		m.debitRetries,
		m.onlineAccounts,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveRequest(method, route, status string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, status).Inc()
}

func (m *Metrics) LeaveDebited(pool string, days int) {
	if m == nil {
		return
	}
	m.leaveDebits.WithLabelValues(pool).Add(float64(days))
}

func (m *Metrics) DebitRefused(reason string) {
	if m == nil {
		return
	}
	m.debitRefusals.WithLabelValues(reason).Inc()
}

func (m *Metrics) DebitRetried() {
	if m == nil {
		return
	}
	m.debitRetries.Inc()
}

func (m *Metrics) SetOnline(n int) {
	if m == nil {
		return
	}
	m.onlineAccounts.Set(float64(n))
}
