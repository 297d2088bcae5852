package observability

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by statement kind.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chirp_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// RelationToggles counts like/follow toggle outcomes.
	// relation is "like" or "follow"; action is "created" or "removed".
	RelationToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_relation_toggles_total",
		Help: "Total number of like/follow toggle operations by outcome",
	}, []string{"relation", "action"})

	// AuthFailures counts failed authentication attempts by reason.
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_auth_failures_total",
		Help: "Total number of failed authentication attempts by reason",
	}, []string{"reason"})
)

// ObserveQueryLatency records the latency of a database statement. The
// operation label is the leading SQL keyword (select, insert, ...).
func ObserveQueryLatency(sql string, elapsed time.Duration) {
	op := "other"
	if fields := strings.Fields(sql); len(fields) > 0 {
		op = strings.ToLower(fields[0])
	}
	DatabaseQueryLatency.WithLabelValues(op).Observe(elapsed.Seconds())
}

// RecordToggle increments the toggle counter for a relation outcome.
func RecordToggle(relation, action string) {
	RelationToggles.WithLabelValues(relation, action).Inc()
}

// RecordAuthFailure increments the auth failure counter for the reason.
func RecordAuthFailure(reason string) {
	AuthFailures.WithLabelValues(reason).Inc()
}
