package main

import (
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/tweet-board/internal/querycache"
)

func resetEnv(t *testing.T) {
	for _, key := range []string{
		"WEB_HOST", "WEB_PORT", "WEB_LOG_LEVEL", "WEB_LOG_FILE", "WEB_API_URL", "WEB_API_TIMEOUT",
		"WEB_SESSION_RESOLVE_TIMEOUT", "WEB_CACHE_STALE_TIME", "WEB_CACHE_GC_TIME", "WEB_TOKEN_MAX_AGE", "WEB_COOKIE_SECURE",
	} {
		t.Setenv(key, "")
	}
}

func TestParseFlags(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"web", "-c", "web.env"}
	assert.Equal(t, "web.env", parseFlags())
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv(t)

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, 2*time.Second, cfg.ResolveTimeout)
	assert.Equal(t, time.Duration(0), cfg.CacheStaleTime)
	assert.Equal(t, 5*time.Minute, cfg.CacheGCTime)
	assert.Equal(t, time.Hour, cfg.TokenMaxAge)
	assert.False(t, cfg.CookieSecure)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv(t)
	t.Setenv("WEB_PORT", "4000")
	t.Setenv("WEB_API_URL", "http://api:8080")
	t.Setenv("WEB_SESSION_RESOLVE_TIMEOUT", "500ms")
	t.Setenv("WEB_CACHE_STALE_TIME", "30s")
	t.Setenv("WEB_CACHE_GC_TIME", "0s")
	t.Setenv("WEB_COOKIE_SECURE", "true")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "http://api:8080", cfg.APIURL)
	assert.Equal(t, 500*time.Millisecond, cfg.ResolveTimeout)
	assert.Equal(t, 30*time.Second, cfg.CacheStaleTime)
	assert.Equal(t, time.Duration(0), cfg.CacheGCTime)
	assert.True(t, cfg.CookieSecure)
}

func TestParseConfig_InvalidDuration(t *testing.T) {
	resetEnv(t)
	t.Setenv("WEB_API_TIMEOUT", "soon")

	_, err := parseConfig("nonexistent.env")
	assert.Error(t, err)
}

func TestNewServer_AgainstAPI(t *testing.T) {
	var tweetsAllCalls int
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/session":
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"user":{"id":"7d444840-9dc0-11d1-b245-5ffdce74fad2","name":"Ann"}}`))
		case "/rpc/tweets.all":
			tweetsAllCalls++
			_, _ = w.Write([]byte(`[{"id":"11111111-1111-1111-1111-111111111111","title":"Hello from the API","createdAt":"2024-05-01T12:00:00Z"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer api.Close()

	resetEnv(t)
	t.Setenv("WEB_API_URL", api.URL)
	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	cache := querycache.New()
	defer cache.Close()

	server, err := newServer(cfg, cache)
	require.NoError(t, err)
	routes := server.Routes()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/tweets", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "tok"})
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Hello from the API")
		assert.Contains(t, rr.Body.String(), "Ann")
	}
	assert.Equal(t, 1, tweetsAllCalls)
}
