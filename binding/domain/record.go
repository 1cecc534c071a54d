package domain

import (
	"bytes"
	"encoding/json"
)

type Field struct {
	Name  string
	Value any
}

// Record é o resultado da resolução de um provider.
//
// Os campos mantêm a ordem da declaração, e o JSON gerado segue essa ordem,
// o que torna a resposta byte a byte determinística.
type Record struct {
	Provider string
	Fields   []Field
}

// Get retorna o valor de um campo do registro.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Map converte o registro para map (perde a ordem; útil em testes/logs).
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r.Fields))
	for _, f := range r.Fields {
		out[f.Name] = f.Value
	}
	return out
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
