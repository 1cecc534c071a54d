package infra

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Slots é um SlotPool sobre semaphore.Weighted que também expõe quantos
// requests estão em resolução.
type Slots struct {
	sem      *semaphore.Weighted
	size     int
	inFlight atomic.Int64
}

func NewSlots(size int) *Slots {
	return &Slots{sem: semaphore.NewWeighted(int64(size)), size: size}
}

func (s *Slots) Size() int { return s.size }

func (s *Slots) InFlight() int { return int(s.inFlight.Load()) }

func (s *Slots) Acquire(ctx context.Context) (func(), error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	s.inFlight.Add(1)
	var once atomic.Bool
	return func() {
		if once.CompareAndSwap(false, true) {
			s.inFlight.Add(-1)
			s.sem.Release(1)
		}
	}, nil
}
