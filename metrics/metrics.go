// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service collectors on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	filterPasses    prometheus.Counter
	matched         prometheus.Histogram
	catalogSize     prometheus.Gauge
	loadFailures    prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "proposal_browser",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		}, []string{"route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "proposal_browser",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		filterPasses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "proposal_browser",
			Name:      "filter_passes_total",
			Help:      "Filter passes run over the catalog.",
		}),
		matched: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "proposal_browser",
			Name:      "filter_matched_proposals",
			Help:      "Proposals left visible by a filter pass.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
		}),
		catalogSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "proposal_browser",
			Name:      "catalog_proposals",
			Help:      "Proposals in the loaded working set.",
		}),
		loadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "proposal_browser",
			Name:      "catalog_load_failures_total",
			Help:      "Failed attempts to load the proposal feed.",
		}),
	}

	m.registry.MustRegister(
		m.requests,
		m.requestDuration,
		m.filterPasses,
		m.matched,
		m.catalogSize,
		m.loadFailures,
	)
	return m
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(route string, code int, d time.Duration) {
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// ObserveFilter matches the view.WithObserver signature.
func (m *Metrics) ObserveFilter(matched, total int) {
	m.filterPasses.Inc()
	m.matched.Observe(float64(matched))
}

func (m *Metrics) SetCatalogSize(n int) {
	m.catalogSize.Set(float64(n))
}

func (m *Metrics) LoadFailed() {
	m.loadFailures.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
