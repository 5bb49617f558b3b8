// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hrms",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hrms",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hrms",
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the rate limiter.",
	})

	// EventsPublished counts record-change events; result is "ok" or "error".
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hrms",
		Name:      "events_published_total",
		Help:      "Record-change events handed to the queue.",
	}, []string{"type", "result"})

	EventsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hrms",
		Name:      "events_consumed_total",
		Help:      "Record-change events processed by the worker.",
	}, []string{"type"})

	OrphanAttendance = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hrms",
		Name:      "orphan_attendance_total",
		Help:      "Attendance records marked for an emp_id with no employee.",
	})
)
