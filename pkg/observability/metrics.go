// Package observability owns the prometheus collectors of the service.
// Collectors are registered once on the default registry by Init; the
// Observe helpers are no-ops until then.
package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "solardash_"

	ResultSuccess = "success"
	ResultError   = "error"

	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	grpcRequests *prometheus.CounterVec

	viewBuilds  *prometheus.CounterVec
	viewLatency *prometheus.HistogramVec

	classifications *prometheus.CounterVec

	exports *prometheus.CounterVec

	rateLimited *prometheus.CounterVec
)

func Init() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total REST requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "REST request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		)
		grpcRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "grpc_requests_total",
				Help: "Total gRPC requests by method and code",
			},
			[]string{"method", "code"},
		)
		viewBuilds = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "view_builds_total",
				Help: "Total page view builds by view and result",
			},
			[]string{"view", "result"},
		)
		viewLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "view_build_latency_seconds",
				Help:    "Page view build latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"view"},
		)
		classifications = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "classifications_total",
				Help: "Total classifier calls by table and resulting tier",
			},
			[]string{"table", "tier"},
		)
		exports = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "exports_total",
				Help: "Total exports by format and result",
			},
			[]string{"format", "result"},
		)
		rateLimited = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "rate_limited_total",
				Help: "Total requests rejected by the per-client limiter",
			},
			[]string{"transport"},
		)

		prometheus.MustRegister(
			httpRequests,
			httpLatency,
			grpcRequests,
			viewBuilds,
			viewLatency,
			classifications,
			exports,
			rateLimited,
		)
	})
}

func resultOf(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}

// ObserveView records one page view build.
func ObserveView(view string, start time.Time, err error) {
	if viewBuilds != nil {
		viewBuilds.WithLabelValues(view, resultOf(err)).Inc()
	}
	if viewLatency != nil {
		viewLatency.WithLabelValues(view).Observe(time.Since(start).Seconds())
	}
}

func IncClassification(table, tier string) {
	if tier == "" {
		tier = "unknown"
	}
	if classifications != nil {
		classifications.WithLabelValues(table, tier).Inc()
	}
}

func IncExport(format string, err error) {
	if format == "" {
		format = "unknown"
	}
	if exports != nil {
		exports.WithLabelValues(format, resultOf(err)).Inc()
	}
}

func IncRateLimited(transport string) {
	if rateLimited != nil {
		rateLimited.WithLabelValues(transport).Inc()
	}
}

func IncGrpcRequest(method, code string) {
	if grpcRequests != nil {
		grpcRequests.WithLabelValues(method, code).Inc()
	}
}

// GinMiddleware counts requests by matched route so path parameters do
// not explode label cardinality.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		if httpRequests != nil {
			httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		}
		if httpLatency != nil {
			httpLatency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
		}
	}
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
