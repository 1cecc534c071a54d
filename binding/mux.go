package binding

import (
	"net/http"

	"query-binding/binding/application"
)

// NewMux monta um handler GET por endpoint do catálogo.
// Os campos Endpoint e Composer de opts são preenchidos a partir do catálogo.
func NewMux(c *application.Catalog, opts HandlerOptions) *http.ServeMux {
	mux := http.NewServeMux()
	for _, ep := range c.Endpoints {
		o := opts
		o.Endpoint = ep
		o.Composer = c.Composer
		mux.Handle(routePattern(ep.Path), Handler(o))
	}
	return mux
}

func routePattern(path string) string {
	if path == "/" {
		return "GET /{$}"
	}
	return "GET " + path
}
