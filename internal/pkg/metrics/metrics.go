// Package metrics holds the prometheus collectors of the promotion service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "promotion"

// Metrics is safe to use through a nil pointer; every observation becomes a no-op.
type Metrics struct {
	registry *prometheus.Registry

	catalogRPCs     *prometheus.CounterVec
	priceQuotes     *prometheus.CounterVec
	outboxPublished prometheus.Counter
	outboxFailures  prometheus.Counter
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		catalogRPCs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_rpcs_total",
			Help:      "Catalog service RPCs by method and gRPC status code.",
		}, []string{"method", "code"}),
		priceQuotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_quotes_total",
			Help:      "Resolved storefront prices by outcome.",
		}, []string{"outcome"}),
		outboxPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_events_published_total",
			Help:      "Outbox events published to the broker.",
		}),
		outboxFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_relay_failures_total",
			Help:      "Failed outbox relay passes.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.catalogRPCs,
		m.priceQuotes,
		m.outboxPublished,
		m.outboxFailures,
	)
	return m
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRPC(method, code string) {
	if m == nil {
		return
	}
	m.catalogRPCs.WithLabelValues(method, code).Inc()
}

func (m *Metrics) ObserveQuote(outcome string) {
	if m == nil {
		return
	}
	m.priceQuotes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObservePublished(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.outboxPublished.Add(float64(n))
}

func (m *Metrics) ObserveRelayFailure() {
	if m == nil {
		return
	}
	m.outboxFailures.Inc()
}
