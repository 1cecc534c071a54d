package domain

import "context"

// Limiter decide se uma ação é permitida agora (ex.: token bucket).
type Limiter interface {
	Allow() bool
}

// LimiterSource obtém um limiter por chave de cliente (IP, API key...).
type LimiterSource interface {
	Limiter(key string) Limiter
}

// SlotPool limita quantas resoluções rodam ao mesmo tempo.
// Acquire espera até haver vaga ou o ctx encerrar (devolvendo ctx.Err());
// o release deve ser chamado exatamente uma vez.
type SlotPool interface {
	Acquire(ctx context.Context) (release func(), err error)
	InFlight() int
}
