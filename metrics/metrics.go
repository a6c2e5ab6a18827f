// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "eventhub",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eventhub",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// OverpassRequestsTotal counts location lookups by kind (cities, areas) and outcome
	// (cache_hit, success, fallback).
	OverpassRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eventhub",
			Name:      "overpass_requests_total",
			Help:      "Overpass lookups by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	// SearchResultsTotal observes how many vendors matched each search.
	SearchResultsTotal = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "eventhub",
			Name:      "search_matches",
			Help:      "Number of vendors matching a search request",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(OverpassRequestsTotal)
	prometheus.MustRegister(SearchResultsTotal)
}

// Middleware records HTTP request duration and count per route pattern.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}
