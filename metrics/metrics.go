package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the service's Prometheus collectors. Checkout persistence
// outcomes are counted per tier; orders lost from both tiers get their own
// counter so the best-effort degradation stays observable.
type Registry struct {
	reg *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec

	OrdersPersisted *prometheus.CounterVec
	OrdersLost      prometheus.Counter
}

// NewRegistry creates and registers all collectors.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_http_requests_total",
		Help: "Total HTTP requests by method, route and status.",
	}, []string{"method", "path", "status"})
	httpLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_http_latency_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	ordersPersisted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_orders_persisted_total",
		Help: "Orders written, by persistence tier.",
	}, []string{"tier"})
	ordersLost := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_lost_total",
		Help: "Orders accepted but persisted nowhere.",
	})

	r.MustRegister(httpRequests, httpLatency, ordersPersisted, ordersLost)
	return &Registry{
		reg:             r,
		HTTPRequests:    httpRequests,
		HTTPLatency:     httpLatency,
		OrdersPersisted: ordersPersisted,
		OrdersLost:      ordersLost,
	}
}

// Handler exposes the registry for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// GinMiddleware records request count and latency for every request.
func (r *Registry) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		r.HTTPRequests.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		r.HTTPLatency.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
	}
}
