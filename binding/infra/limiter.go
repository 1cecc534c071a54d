package infra

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"query-binding/binding/domain"
)

// ClientLimiters mantém um token bucket (x/time/rate) por chave de cliente,
// descartando chaves inativas há mais de idleTTL.
type ClientLimiters struct {
	mu      sync.Mutex
	clients map[string]*clientEntry

	rps        rate.Limit
	burst      int
	idleTTL    time.Duration
	sweepEvery time.Duration
	now        func() time.Time
}

type clientEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

type LimiterOption func(*ClientLimiters)

func WithIdleTTL(d time.Duration) LimiterOption {
	return func(c *ClientLimiters) { c.idleTTL = d }
}

func WithSweepEvery(d time.Duration) LimiterOption {
	return func(c *ClientLimiters) { c.sweepEvery = d }
}

func NewClientLimiters(rps float64, burst int, opts ...LimiterOption) *ClientLimiters {
	c := &ClientLimiters{
		clients:    make(map[string]*clientEntry),
		rps:        rate.Limit(rps),
		burst:      burst,
		idleTTL:    15 * time.Minute,
		sweepEvery: 2 * time.Minute,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *ClientLimiters) RPS() float64 { return float64(c.rps) }
func (c *ClientLimiters) Burst() int   { return c.burst }

// Limiter implementa domain.LimiterSource.
func (c *ClientLimiters) Limiter(key string) domain.Limiter {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.clients[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}
	lim := rate.NewLimiter(c.rps, c.burst)
	c.clients[key] = &clientEntry{lim: lim, lastSeen: now}
	return lim
}

func (c *ClientLimiters) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.clients)
}

// Sweep remove as chaves inativas.
func (c *ClientLimiters) Sweep() {
	cutoff := c.now().Add(-c.idleTTL)

	c.mu.Lock()
	defer c.mu.Unlock()
	for k, ent := range c.clients {
		if ent.lastSeen.Before(cutoff) {
			delete(c.clients, k)
		}
	}
}

// Run executa Sweep periodicamente até o ctx ser cancelado.
// Retorna um canal fechado quando a goroutine termina.
func (c *ClientLimiters) Run(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	if c.sweepEvery <= 0 {
		close(done)
		return done
	}

	t := time.NewTicker(c.sweepEvery)
	go func() {
		defer close(done)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				c.Sweep()
			}
		}
	}()
	return done
}
