package infra

import (
	"context"
	"sync"

	"query-binding/binding/domain"
)

// Counters agrega resoluções por outcome.
type Counters struct {
	Resolved int64
	Invalid  int64
	Failed   int64
}

func (c *Counters) add(outcome string) {
	switch outcome {
	case domain.OutcomeResolved:
		c.Resolved++
	case domain.OutcomeInvalid:
		c.Invalid++
	default:
		c.Failed++
	}
}

// MemoryStats é uma implementação em memória, útil para testes e desenvolvimento.
// Não faz expiração.
type MemoryStats struct {
	mu         sync.Mutex
	total      Counters
	byEndpoint map[string]Counters
}

func NewMemoryStats() *MemoryStats {
	return &MemoryStats{byEndpoint: make(map[string]Counters)}
}

func (s *MemoryStats) Record(_ context.Context, ev domain.ResolutionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total.add(ev.Outcome)
	c := s.byEndpoint[ev.Endpoint]
	c.add(ev.Outcome)
	s.byEndpoint[ev.Endpoint] = c
	return nil
}

func (s *MemoryStats) Total() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *MemoryStats) ByEndpoint() map[string]Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Counters, len(s.byEndpoint))
	for k, v := range s.byEndpoint {
		out[k] = v
	}
	return out
}
