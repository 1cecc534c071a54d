package infra

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"query-binding/binding/domain"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type declarationsFile struct {
	Providers []providerDecl `yaml:"providers"`
	Endpoints []endpointDecl `yaml:"endpoints"`
}

type providerDecl struct {
	ID     string      `yaml:"id"`
	Params []paramDecl `yaml:"params"`
}

type paramDecl struct {
	Name     string    `yaml:"name"`
	Query    string    `yaml:"query"`
	Field    string    `yaml:"field"`
	Kind     string    `yaml:"kind"`
	Default  yaml.Node `yaml:"default"`
	Required bool      `yaml:"required"`
}

type endpointDecl struct {
	Path      string   `yaml:"path"`
	Providers []string `yaml:"providers"`
	Single    bool     `yaml:"single"`
}

// DefaultDeclarations retorna o catálogo embutido no binário.
func DefaultDeclarations() (domain.Declarations, error) {
	return DecodeDeclarations(bytes.NewReader(defaultCatalog))
}

func LoadDeclarations(path string) (domain.Declarations, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Declarations{}, errors.Wrapf(err, "open declarations %s", path)
	}
	defer func() { _ = f.Close() }()
	decl, err := DecodeDeclarations(f)
	if err != nil {
		return domain.Declarations{}, errors.Wrapf(err, "load declarations %s", path)
	}
	return decl, nil
}

// DecodeDeclarations lê o YAML (campos desconhecidos são erro) e converte os
// defaults para a kind de cada parâmetro já no carregamento.
func DecodeDeclarations(r io.Reader) (domain.Declarations, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file declarationsFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Declarations{}, errors.New("declarations are empty")
		}
		return domain.Declarations{}, errors.Wrap(err, "decode declarations")
	}

	out := domain.Declarations{
		Providers: make([]domain.ProviderSpec, 0, len(file.Providers)),
		Endpoints: make([]domain.Endpoint, 0, len(file.Endpoints)),
	}
	for _, p := range file.Providers {
		spec := domain.ProviderSpec{ID: p.ID, Params: make([]domain.ParameterSpec, 0, len(p.Params))}
		for _, param := range p.Params {
			kind, ok := domain.ParseKind(param.Kind)
			if !ok {
				return domain.Declarations{}, &domain.InvalidDeclarationError{Provider: p.ID, Reason: "unknown kind " + param.Kind}
			}
			ps := domain.ParameterSpec{
				Name:     param.Name,
				Query:    param.Query,
				Field:    param.Field,
				Kind:     kind,
				Required: param.Required,
			}
			def, err := decodeDefault(ps, &param.Default)
			if err != nil {
				return domain.Declarations{}, errors.Wrapf(err, "provider %q parameter %q default", p.ID, param.Name)
			}
			ps.Default = def
			spec.Params = append(spec.Params, ps)
		}
		out.Providers = append(out.Providers, spec)
	}
	for _, ep := range file.Endpoints {
		out.Endpoints = append(out.Endpoints, domain.Endpoint{
			Path:      ep.Path,
			Providers: ep.Providers,
			Single:    ep.Single,
		})
	}
	return out, nil
}

func decodeDefault(ps domain.ParameterSpec, node *yaml.Node) (any, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
		return ps.Kind.Decode(ps.EffectiveKey(), []string{node.Value})
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return nil, err
		}
		return ps.Kind.Decode(ps.EffectiveKey(), items)
	}
	return nil, errors.Errorf("unsupported default at line %d", node.Line)
}
