package application

import (
	"errors"
	"fmt"

	"query-binding/binding/domain"
)

var ErrRegistrySealed = errors.New("registry is sealed")

// Registry guarda as declarações dos providers.
//
// Register só é chamado durante o startup; depois de Seal o registry é
// somente leitura e pode ser lido concorrentemente sem lock.
type Registry struct {
	providers map[string]domain.ProviderSpec
	order     []string
	sealed    bool
}

func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]domain.ProviderSpec)}
}

func (r *Registry) Register(p domain.ProviderSpec) error {
	if r.sealed {
		return ErrRegistrySealed
	}
	p = p.Clone()
	for i := range p.Params {
		if p.Params[i].Kind == "" {
			p.Params[i].Kind = domain.KindString
		}
	}
	if err := validateProvider(p); err != nil {
		return err
	}
	if _, ok := r.providers[p.ID]; ok {
		return &domain.DuplicateProviderError{ID: p.ID}
	}
	r.providers[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *Registry) Seal() { r.sealed = true }

func (r *Registry) Sealed() bool { return r.sealed }

func (r *Registry) Lookup(id string) (domain.ProviderSpec, bool) {
	p, ok := r.providers[id]
	return p, ok
}

// IDs retorna os providers na ordem de registro.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

func validateProvider(p domain.ProviderSpec) error {
	if p.ID == "" {
		return &domain.InvalidDeclarationError{Reason: "provider id is empty"}
	}
	names := make(map[string]struct{}, len(p.Params))
	outputs := make(map[string]struct{}, len(p.Params))
	for i, param := range p.Params {
		if param.Name == "" {
			return &domain.InvalidDeclarationError{Provider: p.ID, Reason: fmt.Sprintf("parameter #%d has no name", i)}
		}
		if !param.Kind.Valid() {
			return &domain.InvalidDeclarationError{Provider: p.ID, Reason: fmt.Sprintf("parameter %q has unknown kind %q", param.Name, param.Kind)}
		}
		if _, dup := names[param.Name]; dup {
			return &domain.InvalidDeclarationError{Provider: p.ID, Reason: fmt.Sprintf("parameter %q declared twice", param.Name)}
		}
		names[param.Name] = struct{}{}
		if _, dup := outputs[param.Output()]; dup {
			return &domain.InvalidDeclarationError{Provider: p.ID, Reason: fmt.Sprintf("output field %q declared twice", param.Output())}
		}
		outputs[param.Output()] = struct{}{}
	}
	return nil
}
