package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_http_requests_total",
		Help: "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inventory_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	// IdentifiersGenerated counts generated identifiers. result is one of
	// scan, counter or fallback.
	IdentifiersGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_identifiers_generated_total",
		Help: "Identifiers generated per sequence and strategy outcome.",
	}, []string{"sequence", "result"})
)

const (
	ResultScan     = "scan"
	ResultCounter  = "counter"
	ResultFallback = "fallback"
)

func ObserveIdentifier(sequence, result string) {
	IdentifiersGenerated.WithLabelValues(sequence, result).Inc()
}

// Middleware records request count and latency keyed by the matched route.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)
			HTTPRequests.WithLabelValues(route, method, status).Inc()
			HTTPDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
