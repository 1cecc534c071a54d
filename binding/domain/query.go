package domain

import (
	"net/url"
	"sort"
)

// Query é o mapeamento chave -> valores enviado pelo cliente.
//
// É criada por request e descartada após a resolução.
type Query map[string][]string

// ParseQuery interpreta a query string crua (sem o "?").
func ParseQuery(raw string) (Query, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, &QueryParseError{Raw: raw, Err: err}
	}
	return Query(values), nil
}

// Lookup diferencia chave ausente (ok=false) de chave presente mas vazia
// (ok=true com um único valor "").
func (q Query) Lookup(key string) ([]string, bool) {
	values, ok := q[key]
	if !ok {
		return nil, false
	}
	if len(values) == 0 {
		return []string{""}, true
	}
	return values, true
}

// Keys retorna as chaves em ordem lexicográfica.
func (q Query) Keys() []string {
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
