package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HttpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	RateLimitBlocked = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_rate_limit_blocked_total",
		Help: "Requests rejected by the per-client rate limiter",
	}, []string{"path"})

	// RPC procedures, labelled by outcome code ("OK" on success)
	RPCProceduresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rpc_procedures_total",
		Help: "Total number of tweets.* procedure calls by outcome",
	}, []string{"procedure", "code"})

	// Kafka
	TweetEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tweet_events_total",
		Help: "Tweet lifecycle events by publish result",
	}, []string{"type", "result"})

	// Web front query cache
	QueryCacheRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "query_cache_requests_total",
		Help: "Query cache lookups by procedure and result (hit, miss, refetch, error)",
	}, []string{"procedure", "result"})
)
