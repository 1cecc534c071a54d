package application

import (
	"go.uber.org/multierr"

	"query-binding/binding/domain"
)

// Composer combina os registros de vários providers na ordem pedida.
//
// O resultado é exatamente a sequência de Resolve independentes.
type Composer struct {
	Resolver Resolver
}

func (c Composer) Compose(ids []string, q domain.Query) ([]domain.Record, error) {
	out := make([]domain.Record, 0, len(ids))
	var errs error
	for _, id := range ids {
		rec, err := c.Resolver.Resolve(id, q)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out = append(out, rec)
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func (c Composer) ComposeEndpoint(ep domain.Endpoint, q domain.Query) ([]domain.Record, error) {
	return c.Compose(ep.Providers, q)
}
