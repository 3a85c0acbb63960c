package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EntriesServedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "content_entries_served_total",
		Help: "Total number of content entries served by entity type",
	}, []string{"entity", "locale"})

	EntriesWrittenTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "content_entries_written_total",
		Help: "Total number of admin writes by entity type",
	}, []string{"entity"})

	InquiriesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inquiries_created_total",
		Help: "Total number of inquiries accepted",
	})

	InquiriesRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inquiries_rejected_total",
		Help: "Total number of inquiries rejected by reason",
	}, []string{"reason"})

	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "response_cache_hits_total",
		Help: "Total number of response cache hits",
	})

	CacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "response_cache_misses_total",
		Help: "Total number of response cache misses",
	})

	CacheInvalidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "response_cache_invalidations_total",
		Help: "Total number of cache invalidations by entity type",
	}, []string{"entity"})

	MediaUploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "media_uploads_total",
		Help: "Total number of media files uploaded",
	})

	MediaUploadsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "media_uploads_failed_total",
		Help: "Total number of failed media uploads",
	}, []string{"reason"})

	QueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "content_query_latency_seconds",
		Help:    "Latency of content store queries",
		Buckets: prometheus.DefBuckets,
	}, []string{"entity"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
