package application

import (
	"go.uber.org/multierr"

	"query-binding/binding/domain"
)

// Resolver resolve um provider contra a query de um request.
//
// Não há cache nem estado compartilhado: cada parâmetro é resolvido apenas a
// partir da sua chave efetiva e da query recebida.
type Resolver struct {
	Registry *Registry
}

func (r Resolver) Resolve(providerID string, q domain.Query) (domain.Record, error) {
	if r.Registry == nil {
		return domain.Record{}, &domain.UnknownProviderError{ID: providerID}
	}
	p, ok := r.Registry.Lookup(providerID)
	if !ok {
		return domain.Record{}, &domain.UnknownProviderError{ID: providerID}
	}
	return ResolveProvider(p, q)
}

// ResolveProvider acumula os erros de todos os parâmetros, na ordem declarada.
func ResolveProvider(p domain.ProviderSpec, q domain.Query) (domain.Record, error) {
	rec := domain.Record{Provider: p.ID, Fields: make([]domain.Field, 0, len(p.Params))}
	var errs error
	for _, param := range p.Params {
		v, err := ResolveParameter(param, q)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		rec.Fields = append(rec.Fields, domain.Field{Name: param.Output(), Value: v})
	}
	if errs != nil {
		return domain.Record{}, errs
	}
	return rec, nil
}

// ResolveParameter:
//  1. chave presente na query -> decodifica pela kind
//  2. senão, default declarado
//  3. senão, nil se opcional
//  4. senão, MissingRequiredParameterError
func ResolveParameter(param domain.ParameterSpec, q domain.Query) (any, error) {
	key := param.EffectiveKey()
	if raw, ok := q.Lookup(key); ok {
		return param.Kind.Decode(key, raw)
	}
	if param.Default != nil {
		return domain.CloneValue(param.Default), nil
	}
	if !param.Required {
		return nil, nil
	}
	return nil, &domain.MissingRequiredParameterError{Key: key}
}
