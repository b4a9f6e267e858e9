package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sbilibin2017/tweet-board/internal/client"
	"github.com/sbilibin2017/tweet-board/internal/logger"
	"github.com/sbilibin2017/tweet-board/internal/querycache"
	"github.com/sbilibin2017/tweet-board/internal/web"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

func main() {
	fmt.Printf("Starting web front version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("web front stopped with error: %v", err)
	}
}

func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

type config struct {
	Host     string
	Port     string
	LogLevel string
	LogFile  string

	APIURL     string
	APITimeout time.Duration

	ResolveTimeout time.Duration
	CacheStaleTime time.Duration // 0 keeps entries until explicitly refetched
	CacheGCTime    time.Duration // 0 keeps unused entries until shutdown
	TokenMaxAge    time.Duration
	CookieSecure   bool
}

// parseConfig loads environment variables from a file and returns the web front configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getDuration := func(key, defaultValue string) (time.Duration, error) {
		return time.ParseDuration(getEnv(key, defaultValue))
	}

	cfg.Host = getEnv("WEB_HOST", "localhost")
	cfg.Port = getEnv("WEB_PORT", "3000")
	cfg.LogLevel = getEnv("WEB_LOG_LEVEL", "info")
	cfg.LogFile = getEnv("WEB_LOG_FILE", "")

	cfg.APIURL = getEnv("WEB_API_URL", "http://localhost:8080")
	if cfg.APITimeout, err = getDuration("WEB_API_TIMEOUT", "10s"); err != nil {
		return
	}

	if cfg.ResolveTimeout, err = getDuration("WEB_SESSION_RESOLVE_TIMEOUT", "2s"); err != nil {
		return
	}
	if cfg.CacheStaleTime, err = getDuration("WEB_CACHE_STALE_TIME", "0s"); err != nil {
		return
	}
	if cfg.CacheGCTime, err = getDuration("WEB_CACHE_GC_TIME", "5m"); err != nil {
		return
	}
	if cfg.TokenMaxAge, err = getDuration("WEB_TOKEN_MAX_AGE", "1h"); err != nil {
		return
	}
	if cfg.CookieSecure, err = strconv.ParseBool(getEnv("WEB_COOKIE_SECURE", "false")); err != nil {
		return
	}

	return
}

var _ web.API = (*client.Client)(nil)

func newServer(cfg config, cache *querycache.Cache) (*web.Server, error) {
	api := client.New(cfg.APIURL, client.WithTimeout(cfg.APITimeout))
	return web.New(func(token string) web.API {
		return api.WithToken(token)
	}, cache, web.Config{
		ResolveTimeout: cfg.ResolveTimeout,
		TokenMaxAge:    cfg.TokenMaxAge,
		CookieSecure:   cfg.CookieSecure,
	})
}

// run serves the web front until a shutdown signal arrives.
// The query cache lives exactly as long as the server.
func run(ctx context.Context, cfg config) error {
	var logOpts []logger.Option
	if cfg.LogFile != "" {
		logOpts = append(logOpts, logger.WithFile(cfg.LogFile, 100, 5, 28))
	}
	if err := logger.Initialize(cfg.LogLevel, logOpts...); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()

	var cacheOpts []querycache.Option
	if cfg.CacheStaleTime > 0 {
		cacheOpts = append(cacheOpts, querycache.WithStaleTime(cfg.CacheStaleTime))
	}
	if cfg.CacheGCTime > 0 {
		cacheOpts = append(cacheOpts, querycache.WithGCTime(cfg.CacheGCTime))
	}
	cache := querycache.New(cacheOpts...)
	defer cache.Close()

	server, err := newServer(cfg, cache)
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infow("web front listening", "addr", srv.Addr, "api", cfg.APIURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping web front...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("web front stopped gracefully")
	return nil
}
