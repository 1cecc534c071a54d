// Package binding expõe o binding de query parameters via net/http.
//
// Camadas:
//
//   - domain: declarações, query, registros e erros (sem net/http)
//   - application: registry, resolver, composer e throttle
//   - infra: YAML de declarações, token bucket, semáforo e estatísticas
//   - binding (este pacote): handler HTTP, tradução de erros para status/JSON e middlewares
//
// Fluxo de um request:
//
//  1. Interpreta a query string crua
//  2. Resolve cada provider do endpoint apenas pelas suas próprias chaves
//  3. Responde o registro (endpoint single) ou a lista de registros
//  4. Erros de validação viram 400 com a chave que falhou
package binding
