package application

import (
	"fmt"
	"strings"
	"unicode"

	"query-binding/binding/domain"
)

// Catalog é a configuração imutável do processo: providers registrados
// e endpoints validados.
type Catalog struct {
	Registry  *Registry
	Composer  Composer
	Endpoints []domain.Endpoint
}

// NewCatalog registra todos os providers, sela o registry e valida os endpoints.
// Qualquer erro aqui é fatal: o processo não deve servir requests.
func NewCatalog(decl domain.Declarations) (*Catalog, error) {
	reg := NewRegistry()
	for _, p := range decl.Providers {
		if err := reg.Register(p); err != nil {
			return nil, err
		}
	}
	reg.Seal()

	seen := make(map[string]struct{}, len(decl.Endpoints))
	endpoints := make([]domain.Endpoint, 0, len(decl.Endpoints))
	for _, ep := range decl.Endpoints {
		if err := validateEndpoint(reg, ep); err != nil {
			return nil, err
		}
		if _, dup := seen[ep.Path]; dup {
			return nil, &domain.InvalidDeclarationError{Reason: fmt.Sprintf("endpoint %q declared twice", ep.Path)}
		}
		seen[ep.Path] = struct{}{}
		ep.Providers = append([]string(nil), ep.Providers...)
		endpoints = append(endpoints, ep)
	}

	return &Catalog{
		Registry:  reg,
		Composer:  Composer{Resolver: Resolver{Registry: reg}},
		Endpoints: endpoints,
	}, nil
}

// Endpoint busca um endpoint pelo path.
func (c *Catalog) Endpoint(path string) (domain.Endpoint, bool) {
	for _, ep := range c.Endpoints {
		if ep.Path == path {
			return ep, true
		}
	}
	return domain.Endpoint{}, false
}

func validateEndpoint(reg *Registry, ep domain.Endpoint) error {
	if !strings.HasPrefix(ep.Path, "/") {
		return &domain.InvalidDeclarationError{Reason: fmt.Sprintf("endpoint path %q must start with /", ep.Path)}
	}
	// o path vira um pattern literal do ServeMux: sem wildcard nem subárvore
	if strings.ContainsAny(ep.Path, "{}") || strings.IndexFunc(ep.Path, unicode.IsSpace) >= 0 {
		return &domain.InvalidDeclarationError{Reason: fmt.Sprintf("endpoint path %q must not contain wildcards or whitespace", ep.Path)}
	}
	if ep.Path != "/" && strings.HasSuffix(ep.Path, "/") {
		return &domain.InvalidDeclarationError{Reason: fmt.Sprintf("endpoint path %q must not end with /", ep.Path)}
	}
	if len(ep.Providers) == 0 {
		return &domain.InvalidDeclarationError{Reason: fmt.Sprintf("endpoint %q has no providers", ep.Path)}
	}
	if ep.Single && len(ep.Providers) != 1 {
		return &domain.InvalidDeclarationError{Reason: fmt.Sprintf("single endpoint %q must have exactly one provider", ep.Path)}
	}
	for _, id := range ep.Providers {
		if _, ok := reg.Lookup(id); !ok {
			return &domain.UnknownProviderError{ID: id}
		}
	}
	return nil
}
