package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var routeLabels = []string{"method", "route", "status"}

type httpMetrics struct {
	inFlight      prometheus.Gauge
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	responseBytes *prometheus.HistogramVec
}

// NewMetrics registers the HTTP collectors on reg and returns a middleware
// feeding them. Requests are labelled by chi route pattern, so draft and
// line ids never become label values.
func NewMetrics(reg prometheus.Registerer) func(next http.Handler) http.Handler {
	factory := promauto.With(reg)
	m := &httpMetrics{
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "order_desk",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "order_desk",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests processed.",
		}, routeLabels),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "order_desk",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, routeLabels),
		// drafts with many lines and suggestion lists grow past 10KB
		responseBytes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "order_desk",
			Subsystem: "http",
			Name:      "response_size_bytes",
			Help:      "HTTP response body sizes in bytes.",
			Buckets:   prometheus.ExponentialBuckets(128, 4, 7),
		}, []string{"route"}),
	}
	return m.handler
}

func (m *httpMetrics) handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		start := time.Now()
		rw := wrapResponseWriter(w)
		next.ServeHTTP(rw, r)

		route := routePattern(r)
		labels := prometheus.Labels{
			"method": r.Method,
			"route":  route,
			"status": strconv.Itoa(rw.status),
		}
		m.requests.With(labels).Inc()
		m.duration.With(labels).Observe(time.Since(start).Seconds())
		m.responseBytes.WithLabelValues(route).Observe(float64(rw.written))
	})
}
