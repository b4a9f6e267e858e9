package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gathered(t *testing.T) map[string]float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				values[mf.GetName()] += c.GetValue()
			}
			if h := m.GetHistogram(); h != nil {
				values[mf.GetName()] += float64(h.GetSampleCount())
			}
		}
	}
	return values
}

func TestMetricsAreRegistered(t *testing.T) {
	RPCProceduresTotal.WithLabelValues("tweets.all", "OK").Inc()
	HttpRequestsTotal.WithLabelValues("GET", "/rpc/tweets.all", "200").Inc()
	HttpRequestDuration.WithLabelValues("GET", "/rpc/tweets.all").Observe(0.01)
	RateLimitBlocked.WithLabelValues("/api/auth/login").Inc()
	TweetEventsTotal.WithLabelValues("tweet.created", "ok").Inc()
	QueryCacheRequestsTotal.WithLabelValues("tweets.all", "hit").Inc()

	values := gathered(t)
	for _, name := range []string{
		"rpc_procedures_total",
		"http_requests_total",
		"http_request_duration_seconds",
		"http_rate_limit_blocked_total",
		"tweet_events_total",
		"query_cache_requests_total",
	} {
		assert.GreaterOrEqual(t, values[name], float64(1), name)
	}
}
