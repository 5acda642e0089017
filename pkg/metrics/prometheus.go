package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planning_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planning_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	EntityOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planning_entity_operations_total",
			Help: "Total number of successful registry write operations",
		},
		[]string{"entity", "operation"},
	)

	FilesUploaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "planning_files_uploaded_total",
			Help: "Total number of files stored in the upload directory",
		},
	)
)
