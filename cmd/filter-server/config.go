package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
)

type config struct {
	listenAddr       string
	declarationsFile string
	logLevel         string

	rateEnabled   bool
	rateRPS       float64
	rateBurst     int
	rateKeyHeader string
	trustXFF      bool
	retryAfter    time.Duration
	addHeaders    bool

	concurrencyMax     int
	concurrencyTimeout time.Duration

	statsEnabled       bool
	statsRedisAddr     string
	statsRedisPassword string
	statsRedisDB       int
	statsPrefix        string
	statsTTL           time.Duration
}

// envReader lê variáveis com default; valores malformados acumulam erro em vez
// de cair silenciosamente no default.
type envReader struct {
	errs error
}

func env[T any](e *envReader, key string, def T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return def
	}
	v, err := parse(strings.TrimSpace(raw))
	if err != nil {
		e.errs = multierr.Append(e.errs, fmt.Errorf("%s: invalid value %q", key, raw))
		return def
	}
	return v
}

func asString(s string) (string, error) { return s, nil }

func asFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

func readConfig() (config, error) {
	e := &envReader{}
	cfg := config{
		listenAddr:       env(e, "LISTEN_ADDR", ":8080", asString),
		declarationsFile: env(e, "DECLARATIONS_FILE", "", asString),
		logLevel:         env(e, "LOG_LEVEL", "info", asString),

		rateEnabled:   env(e, "RATE_ENABLED", false, strconv.ParseBool),
		rateRPS:       env(e, "RATE_RPS", 50.0, asFloat),
		rateBurst:     env(e, "RATE_BURST", 100, strconv.Atoi),
		rateKeyHeader: env(e, "RATE_KEY_HEADER", "", asString),
		trustXFF:      env(e, "TRUST_XFF", false, strconv.ParseBool),
		retryAfter:    env(e, "RETRY_AFTER", time.Second, time.ParseDuration),
		addHeaders:    env(e, "ADD_RATELIMIT_HEADERS", false, strconv.ParseBool),

		concurrencyMax:     env(e, "CONCURRENCY_MAX", 100, strconv.Atoi),
		concurrencyTimeout: env(e, "CONCURRENCY_TIMEOUT", time.Duration(0), time.ParseDuration),

		statsEnabled:       env(e, "STATS_ENABLED", false, strconv.ParseBool),
		statsRedisAddr:     env(e, "STATS_REDIS_ADDR", "", asString),
		statsRedisPassword: os.Getenv("STATS_REDIS_PASSWORD"),
		statsRedisDB:       env(e, "STATS_REDIS_DB", 0, strconv.Atoi),
		statsPrefix:        env(e, "STATS_PREFIX", "binding:stats", asString),
		statsTTL:           env(e, "STATS_TTL", 24*time.Hour, time.ParseDuration),
	}

	errs := e.errs
	if cfg.statsEnabled && cfg.statsRedisAddr == "" {
		errs = multierr.Append(errs, fmt.Errorf("STATS_REDIS_ADDR is required when STATS_ENABLED=true"))
	}
	if cfg.rateEnabled && cfg.rateRPS <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("RATE_RPS must be > 0"))
	}
	if cfg.rateEnabled && cfg.rateBurst <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("RATE_BURST must be > 0"))
	}
	if cfg.concurrencyMax < 0 {
		errs = multierr.Append(errs, fmt.Errorf("CONCURRENCY_MAX must be >= 0"))
	}
	if errs != nil {
		return config{}, errs
	}
	return cfg, nil
}
