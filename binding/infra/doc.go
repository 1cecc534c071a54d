// Package infra contém implementações concretas para os contratos do pacote domain.
//
// Exemplos:
//   - LoadDeclarations/DefaultDeclarations: declarações em YAML (gopkg.in/yaml.v3)
//   - ClientLimiters: token bucket por cliente usando golang.org/x/time/rate
//   - Slots: limite de concorrência sobre golang.org/x/sync/semaphore
//   - MemoryStats/RedisStats: contadores de resolução
package infra
