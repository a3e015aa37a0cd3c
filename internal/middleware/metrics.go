package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "joinme_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// PushDeliveries counts web-push delivery attempts by outcome
	// (sent, failed, pruned).
	PushDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "joinme_push_deliveries_total",
		Help: "Total number of web-push delivery attempts by outcome",
	}, []string{"outcome"})

	// NearbyQueryCandidates observes how many rows the bounding-box
	// pre-filter hands to the exact distance filter.
	NearbyQueryCandidates = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "joinme_nearby_query_candidates",
		Help:    "Candidate rows surviving the bounding-box pre-filter per proximity query",
		Buckets: []float64{0, 5, 10, 25, 50, 100, 250, 500},
	})
)

// InitMetrics creates the fiberprometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-instrumentation handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
