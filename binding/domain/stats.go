package domain

import (
	"context"
	"time"
)

const (
	OutcomeResolved = "resolved"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
)

// ResolutionEvent representa o resultado de uma resolução de endpoint.
//
// Observação: Endpoint vem da declaração (não do path cru), então a
// cardinalidade é limitada ao número de endpoints declarados.
type ResolutionEvent struct {
	Endpoint string
	Status   int
	Outcome  string
	At       time.Time
}

// StatsStore persiste estatísticas de resolução.
// O handler trata erro como best-effort (não derruba o request).
type StatsStore interface {
	Record(ctx context.Context, ev ResolutionEvent) error
}
