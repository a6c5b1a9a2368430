// Package metrics exposes the service's prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vacancy_service_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vacancy_service_http_request_duration_seconds",
		Help:    "Time spent serving HTTP requests",
		Buckets: prometheus.ExponentialBuckets(0.001, 2.0, 12), // 1ms to ~4s
	}, []string{"method", "path"})

	ImportRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vacancy_service_import_runs_total",
		Help: "Total number of bulk import calls",
	}, []string{"status"})

	ImportedJobs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vacancy_service_imported_jobs_total",
		Help: "Total number of vacancies added by bulk import",
	})
)

// Collector returns middleware recording request counts and latency. The
// route template is used as the path label to keep cardinality bounded.
func Collector() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		RequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
