package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the HTTP Prometheus collectors
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
	limited  *prometheus.CounterVec
	gatherer prometheus.Gatherer
}

// NewMetrics registers the collectors on reg and serves them from gatherer
func NewMetrics(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sitecraft_http_requests_total",
				Help: "Total count of HTTP requests received.",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sitecraft_http_request_duration_seconds",
				Help:    "Histogram of request durations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sitecraft_http_inflight_requests",
			Help: "Number of requests currently being handled.",
		}),
		limited: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sitecraft_rate_limited_total",
				Help: "Requests rejected by a rate limiter.",
			},
			[]string{"route"},
		),
		gatherer: gatherer,
	}

	reg.MustRegister(m.requests, m.duration, m.inFlight, m.limited)
	return m
}

// Middleware records one observation per request, labelled by route pattern
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
		if status == http.StatusTooManyRequests {
			m.limited.WithLabelValues(route).Inc()
		}
	}
}

// Handler exposes /metrics
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
}
