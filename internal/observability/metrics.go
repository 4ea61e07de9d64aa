package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "adulto_mayor_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adulto_mayor_cache_hits_total",
			Help: "Number of cache lookups by outcome",
		},
		[]string{"operation"},
	)

	// StoreOperations tracks remote store calls
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adulto_mayor_store_operations_total",
			Help: "Number of remote store operations",
		},
		[]string{"table", "operation", "status"},
	)

	// RaffleDraws tracks draw attempts by outcome
	RaffleDraws = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adulto_mayor_raffle_draws_total",
			Help: "Number of raffle draw attempts",
		},
		[]string{"status"},
	)

	// Notifications tracks user-visible notifications by variant
	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adulto_mayor_notifications_total",
			Help: "Number of notifications raised",
		},
		[]string{"variant"},
	)

	// GeocodeRequests tracks reverse geocoding lookups
	GeocodeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adulto_mayor_geocode_requests_total",
			Help: "Number of reverse geocoding requests",
		},
		[]string{"status"},
	)

	// ActiveSessions tracks live coordinator sessions
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "adulto_mayor_active_sessions",
			Help: "Number of authenticated sessions held in memory",
		},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "adulto_mayor_active_connections",
			Help: "Number of active connections",
		},
	)
)
