package binding

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"query-binding/binding/domain"
)

const defaultRetryAfter = time.Second

// KeyFunc extrai a chave do cliente para o rate limit.
type KeyFunc func(r *http.Request) string

type RateLimitOptions struct {
	Limiters           domain.LimiterSource
	KeyFn              KeyFunc
	KeyHeader          string
	TrustXForwardedFor bool
	RetryAfter         time.Duration
	AddHeaders         bool
	Logger             *zap.Logger
}

type ConcurrencyOptions struct {
	Pool           domain.SlotPool
	AcquireTimeout time.Duration
	Logger         *zap.Logger
}

type rateInfo interface {
	RPS() float64
	Burst() int
}

// ClientKey: header configurado > primeiro IP do X-Forwarded-For (se confiável) > host do RemoteAddr.
func ClientKey(header string, trustXFF bool) KeyFunc {
	return func(r *http.Request) string {
		if header != "" {
			if v := strings.TrimSpace(r.Header.Get(header)); v != "" {
				return v
			}
		}
		if trustXFF {
			if first, _, _ := strings.Cut(r.Header.Get("X-Forwarded-For"), ","); strings.TrimSpace(first) != "" {
				return strings.TrimSpace(first)
			}
		}
		addr := strings.TrimSpace(r.RemoteAddr)
		if host, _, err := net.SplitHostPort(addr); err == nil && host != "" {
			return host
		}
		if addr != "" {
			return addr
		}
		return "unknown"
	}
}

// retryAfterSeconds arredonda para cima: o cliente nunca volta antes da hora.
func retryAfterSeconds(d time.Duration) string {
	if d <= 0 {
		d = defaultRetryAfter
	}
	return strconv.Itoa(int(math.Ceil(d.Seconds())))
}

// RateLimit aplica um token bucket por cliente antes da resolução.
// Requests rejeitados recebem 429 com o mesmo corpo JSON dos erros de resolução.
func RateLimit(opts RateLimitOptions) func(next http.Handler) http.Handler {
	if opts.Limiters == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	if opts.KeyFn == nil {
		opts.KeyFn = ClientKey(opts.KeyHeader, opts.TrustXForwardedFor)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	retryAfter := retryAfterSeconds(opts.RetryAfter)
	info, hasInfo := opts.Limiters.(rateInfo)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := opts.KeyFn(r)
			if opts.AddHeaders {
				w.Header().Set("X-RateLimit-Key", key)
				if hasInfo {
					w.Header().Set("X-RateLimit-RPS", strconv.FormatFloat(info.RPS(), 'f', -1, 64))
					w.Header().Set("X-RateLimit-Burst", strconv.Itoa(info.Burst()))
				}
			}

			if lim := opts.Limiters.Limiter(key); lim != nil && !lim.Allow() {
				opts.Logger.Debug("rate limited", zap.String("client", key), zap.String("path", r.URL.Path))
				w.Header().Set("Retry-After", retryAfter)
				writeStatus(w, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ConcurrencyLimit limita as resoluções simultâneas; sem Pool não limita.
// Com AcquireTimeout > 0 a espera por vaga é limitada; senão dura até o request cancelar.
func ConcurrencyLimit(opts ConcurrencyOptions) func(next http.Handler) http.Handler {
	if opts.Pool == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if opts.AcquireTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, opts.AcquireTimeout)
				defer cancel()
			}
			release, err := opts.Pool.Acquire(ctx)
			if err != nil {
				opts.Logger.Warn("no resolution slot",
					zap.String("path", r.URL.Path),
					zap.Int("inFlight", opts.Pool.InFlight()),
					zap.Error(err))
				writeStatus(w, http.StatusServiceUnavailable)
				return
			}
			defer release()
			next.ServeHTTP(w, r)
		})
	}
}
