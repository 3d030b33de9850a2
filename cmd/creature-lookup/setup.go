package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/clients/external"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/config"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/errors"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/redis"
	creaturecache "github.com/KirkDiggler/rpg-creature-lookup/internal/repositories/creature_cache"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/telemetry"
)

const redisPingTimeout = 3 * time.Second

var (
	// Persistent flags
	envFile     string
	baseURL     string
	timeout     time.Duration
	cacheMode   string
	cacheTTL    time.Duration
	redisAddr   string
	logLevel    string
	otelEnabled bool

	cfg               *config.Config
	shutdownTelemetry func(context.Context) error
	logCloser         io.Closer
)

// setup loads config, installs the logger and starts tracing.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(envFile)
	if err != nil {
		return err
	}
	applyFlags(cmd, loaded)
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	out, closer, err := logOutput(cmd)
	if err != nil {
		return err
	}
	logCloser = closer
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	if cfg.OTel {
		shutdown, err := telemetry.Setup(cmd.Context())
		if err != nil {
			slog.Warn("Telemetry setup failed, continuing without traces", "error", err)
		} else {
			shutdownTelemetry = shutdown
		}
	}

	return nil
}

func teardown(cmd *cobra.Command, _ []string) error {
	if shutdownTelemetry != nil {
		if err := shutdownTelemetry(context.WithoutCancel(cmd.Context())); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
		shutdownTelemetry = nil
	}
	if logCloser != nil {
		_ = logCloser.Close() // nolint:errcheck // nothing left to log to
		logCloser = nil
	}
	return nil
}

// applyFlags lets explicitly set flags win over the environment.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("base-url") {
		c.BaseURL = baseURL
	}
	if flags.Changed("timeout") {
		c.Timeout = timeout
	}
	if flags.Changed("cache") {
		c.Cache = cacheMode
	}
	if flags.Changed("cache-ttl") {
		c.CacheTTL = cacheTTL
	}
	if flags.Changed("redis-addr") {
		c.RedisAddr = redisAddr
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}
	if flags.Changed("otel") {
		c.OTel = otelEnabled
	}
}

// logOutput keeps the terminal UI's screen free of log lines.
func logOutput(cmd *cobra.Command) (io.Writer, io.Closer, error) {
	if cmd != tuiCmd {
		return cmd.ErrOrStderr(), nil, nil
	}
	if tuiLogFile == "" {
		return io.Discard, nil, nil
	}

	f, err := os.OpenFile(tuiLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open log file %s", tuiLogFile)
	}
	return f, f, nil
}

// newClient builds the creature client, wrapped in a cache when one is
// configured. The returned cleanup releases cache connections.
func newClient(ctx context.Context) (external.Client, func(), error) {
	noop := func() {}

	client, err := external.New(&external.Config{
		BaseURL:     cfg.BaseURL,
		HTTPTimeout: cfg.Timeout,
	})
	if err != nil {
		return nil, noop, errors.Wrap(err, "failed to create creature client")
	}

	if !cfg.CacheEnabled() {
		return client, noop, nil
	}

	repo, cleanup, err := newCache(ctx)
	if err != nil {
		return nil, noop, err
	}

	cached, err := external.NewCachedClient(&external.CachedConfig{
		Client: client,
		Cache:  repo,
		TTL:    cfg.CacheTTL,
	})
	if err != nil {
		cleanup()
		return nil, noop, errors.Wrap(err, "failed to create cached client")
	}

	slog.InfoContext(ctx, "Creature cache enabled", "backend", cfg.Cache, "ttl", cfg.CacheTTL)
	return cached, cleanup, nil
}

func newCache(ctx context.Context) (creaturecache.Repository, func(), error) {
	noop := func() {}

	if cfg.Cache == config.CacheMemory {
		return creaturecache.NewInMemory(&creaturecache.InMemoryConfig{Clock: clock.New()}), noop, nil
	}

	rdb, cleanup, err := openRedis(ctx)
	if err != nil {
		return nil, noop, err
	}

	repo, err := creaturecache.NewRedis(&creaturecache.RedisConfig{Client: rdb})
	if err != nil {
		cleanup()
		return nil, noop, errors.Wrap(err, "failed to create redis cache")
	}
	return repo, cleanup, nil
}

// openRedis connects to the configured redis and checks it answers.
func openRedis(ctx context.Context) (redis.Client, func(), error) {
	rdb, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		UseTLS:   cfg.RedisTLS,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create redis client")
	}
	cleanup := func() {
		_ = rdb.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	if err := redis.Ping(ctx, rdb, redisPingTimeout); err != nil {
		cleanup()
		return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis not reachable").
			WithMeta("addr", cfg.RedisAddr)
	}
	return rdb, cleanup, nil
}
