package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pricecomparator",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route and status code.",
	}, []string{"method", "route", "code"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pricecomparator",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pricecomparator",
		Name:      "cache_lookups_total",
		Help:      "Query cache lookups by result.",
	}, []string{"result"})

	catalogRecords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "pricecomparator",
		Name:      "catalog_records",
		Help:      "Records held by the loaded catalog.",
	}, []string{"kind"})

	alertsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "pricecomparator",
		Name:      "alerts_active",
		Help:      "Price alerts still waiting for their target price.",
	})

	alertsTriggered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pricecomparator",
		Name:      "alerts_triggered_total",
		Help:      "Price alerts that reached their target price.",
	})
)

func SetCatalogSize(products int, discounts int) {
	catalogRecords.WithLabelValues("products").Set(float64(products))
	catalogRecords.WithLabelValues("discounts").Set(float64(discounts))
}
