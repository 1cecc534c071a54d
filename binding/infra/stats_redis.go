package infra

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"query-binding/binding/domain"
)

// RedisStats grava contadores de resolução em hashes do Redis:
//
//	<prefix>:total            outcome -> n
//	<prefix>:endpoint         "<path>:<outcome>" -> n
//	<prefix>:minute:<bucket>  outcome -> n (expira após ttl)
type RedisStats struct {
	rdb    redis.Cmdable
	prefix string
	// ttl vale só para os buckets por minuto; total e endpoint são cumulativos.
	ttl time.Duration
}

type RedisStatsOption func(*RedisStats)

func WithStatsPrefix(prefix string) RedisStatsOption {
	return func(s *RedisStats) { s.prefix = strings.Trim(prefix, ":") }
}

func WithStatsTTL(d time.Duration) RedisStatsOption {
	return func(s *RedisStats) { s.ttl = d }
}

func NewRedisStats(rdb redis.Cmdable, opts ...RedisStatsOption) *RedisStats {
	s := &RedisStats{
		rdb:    rdb,
		prefix: "binding:stats",
		ttl:    24 * time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStats) Prefix() string { return s.prefix }

func (s *RedisStats) Record(ctx context.Context, ev domain.ResolutionEvent) error {
	if s == nil || s.rdb == nil {
		return nil
	}
	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}
	outcome := ev.Outcome
	if outcome == "" {
		outcome = domain.OutcomeFailed
	}

	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(ctx, s.prefix+":total", outcome, 1)
	if ep := strings.TrimSpace(ev.Endpoint); ep != "" {
		pipe.HIncrBy(ctx, s.prefix+":endpoint", ep+":"+outcome, 1)
	}
	bucket := fmt.Sprintf("%s:minute:%s", s.prefix, at.UTC().Format("200601021504"))
	pipe.HIncrBy(ctx, bucket, outcome, 1)
	if s.ttl > 0 {
		pipe.Expire(ctx, bucket, s.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}
