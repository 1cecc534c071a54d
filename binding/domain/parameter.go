package domain

// ParameterSpec declara um parâmetro de um provider.
//
// Name é o nome local (dentro do provider). Query, quando preenchido, é a chave
// usada na query string; caso contrário a chave é o próprio Name.
// Kind vazio é registrado como KindString.
type ParameterSpec struct {
	Name     string
	Query    string
	Field    string
	Kind     Kind
	Default  any
	Required bool
}

// EffectiveKey retorna a chave da query string usada na busca do valor.
func (p ParameterSpec) EffectiveKey() string {
	if p.Query != "" {
		return p.Query
	}
	return p.Name
}

// Output retorna o nome do campo no registro resolvido.
func (p ParameterSpec) Output() string {
	if p.Field != "" {
		return p.Field
	}
	return p.Name
}

// ProviderSpec é a declaração estática de um provider: a lista ordenada dos
// parâmetros que compõem o seu registro.
type ProviderSpec struct {
	ID     string
	Params []ParameterSpec
}

// Clone devolve uma cópia independente (inclusive dos defaults em lista).
func (p ProviderSpec) Clone() ProviderSpec {
	out := ProviderSpec{ID: p.ID, Params: make([]ParameterSpec, len(p.Params))}
	for i, param := range p.Params {
		param.Default = CloneValue(param.Default)
		out.Params[i] = param
	}
	return out
}

// Endpoint associa uma rota a uma sequência de providers.
//
// Com Single=true a resposta é o próprio registro (ex.: {"ids": [...]});
// caso contrário é a lista de registros na ordem declarada.
type Endpoint struct {
	Path      string
	Providers []string
	Single    bool
}

// Declarations agrupa tudo que é declarado uma única vez no startup.
type Declarations struct {
	Providers []ProviderSpec
	Endpoints []Endpoint
}
