package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"query-binding/binding"
	"query-binding/binding/application"
	"query-binding/binding/domain"
	"query-binding/binding/infra"
)

func main() {
	cfg, err := readConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := newLogger(cfg.logLevel)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	decl, err := loadDeclarations(cfg.declarationsFile)
	if err != nil {
		logger.Fatal("declarations error", zap.Error(err))
	}
	// registro duplicado/endpoint inválido: o processo se recusa a servir
	catalog, err := application.NewCatalog(decl)
	if err != nil {
		logger.Fatal("catalog error", zap.Error(err))
	}

	var stats domain.StatsStore = infra.NewMemoryStats()
	if cfg.statsEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.statsRedisAddr,
			Password: cfg.statsRedisPassword,
			DB:       cfg.statsRedisDB,
		})
		defer func() { _ = rdb.Close() }()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_, err := rdb.Ping(pingCtx).Result()
		cancel()
		if err != nil {
			logger.Fatal("redis stats ping error", zap.Error(err))
		}
		stats = infra.NewRedisStats(rdb, infra.WithStatsPrefix(cfg.statsPrefix), infra.WithStatsTTL(cfg.statsTTL))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	h := http.Handler(binding.NewMux(catalog, binding.HandlerOptions{Stats: stats, Logger: logger}))
	if cfg.concurrencyMax > 0 {
		h = binding.ConcurrencyLimit(binding.ConcurrencyOptions{
			Pool:           infra.NewSlots(cfg.concurrencyMax),
			AcquireTimeout: cfg.concurrencyTimeout,
			Logger:         logger,
		})(h)
	}
	if cfg.rateEnabled {
		limiters := infra.NewClientLimiters(cfg.rateRPS, cfg.rateBurst)
		limiters.Run(ctx)
		h = binding.RateLimit(binding.RateLimitOptions{
			Limiters:           limiters,
			KeyHeader:          cfg.rateKeyHeader,
			TrustXForwardedFor: cfg.trustXFF,
			RetryAfter:         cfg.retryAfter,
			AddHeaders:         cfg.addHeaders,
			Logger:             logger,
		})(h)
	}

	srv := &http.Server{
		Addr:              cfg.listenAddr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	for _, ep := range catalog.Endpoints {
		logger.Info("endpoint", zap.String("path", ep.Path), zap.Strings("providers", ep.Providers), zap.Bool("single", ep.Single))
	}
	logger.Info("filter server listening",
		zap.String("addr", cfg.listenAddr),
		zap.Bool("rateEnabled", cfg.rateEnabled),
		zap.Float64("rps", cfg.rateRPS),
		zap.Int("burst", cfg.rateBurst),
		zap.Int("concurrencyMax", cfg.concurrencyMax),
		zap.Bool("statsRedis", cfg.statsEnabled))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}

func loadDeclarations(path string) (domain.Declarations, error) {
	if path == "" {
		return infra.DefaultDeclarations()
	}
	return infra.LoadDeclarations(path)
}

func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg.Level = lvl
	return zcfg.Build()
}
