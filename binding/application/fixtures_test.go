package application

import "query-binding/binding/domain"

func filterProvider(id, fieldKey, fieldDefault, valueKey string) domain.ProviderSpec {
	return domain.ProviderSpec{
		ID: id,
		Params: []domain.ParameterSpec{
			{Name: "field", Query: fieldKey, Kind: domain.KindString, Default: fieldDefault},
			{Name: "value", Query: valueKey, Kind: domain.KindString},
		},
	}
}

func newTestRegistry(t interface{ Fatalf(string, ...any) }, providers ...domain.ProviderSpec) *Registry {
	reg := NewRegistry()
	for _, p := range providers {
		if err := reg.Register(p); err != nil {
			t.Fatalf("register %s: %v", p.ID, err)
		}
	}
	reg.Seal()
	return reg
}

func mustQuery(raw string) domain.Query {
	q, err := domain.ParseQuery(raw)
	if err != nil {
		panic(err)
	}
	return q
}
