package domain

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Kind é o formato esperado de um parâmetro.
type Kind string

const (
	KindString  Kind = "string"
	KindInt     Kind = "int"
	KindUUID    Kind = "uuid"
	KindStrings Kind = "[]string"
	KindInts    Kind = "[]int"
	KindUUIDs   Kind = "[]uuid"
	// KindIDs aceita []int | []uuid | []string, decidido pela lista inteira:
	// ints se todos os itens forem inteiros, senão uuids se todos forem UUID
	// canônicos, senão strings. Nunca falha por tipo de elemento.
	KindIDs Kind = "[]id"
)

// ParseKind aceita o nome da kind; vazio equivale a string.
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.TrimSpace(s))
	if k == "" {
		return KindString, true
	}
	return k, k.Valid()
}

func (k Kind) Valid() bool {
	switch k {
	case KindString, KindInt, KindUUID, KindStrings, KindInts, KindUUIDs, KindIDs:
		return true
	}
	return false
}

func (k Kind) IsList() bool {
	return strings.HasPrefix(string(k), "[]")
}

// Decode converte os valores crus de uma chave da query para a kind.
//
// Listas aceitam chave repetida (ids=1&ids=2) e valores separados por vírgula
// (ids=1,2); itens vazios são ignorados, então "ids=" vira lista vazia.
// Escalares rejeitam mais de um valor.
//
// Um único valor para um kind de lista é uma lista de um elemento (ids=7 vira
// [7]), nunca um shape mismatch. ShapeMismatchError só ocorre para escalar com
// chave repetida ou item que não converte para o tipo do elemento.
func (k Kind) Decode(key string, raw []string) (any, error) {
	if !k.IsList() {
		if len(raw) != 1 {
			return nil, &ShapeMismatchError{Key: key, Expected: string(k), Received: "list"}
		}
		return k.decodeScalar(key, raw[0])
	}

	items := splitItems(raw)
	switch k {
	case KindStrings:
		return items, nil
	case KindInts:
		return decodeInts(key, k, items)
	case KindUUIDs:
		return decodeUUIDs(key, k, items)
	case KindIDs:
		if ints, err := decodeInts(key, k, items); err == nil {
			return ints, nil
		}
		if ids, err := decodeUUIDs(key, k, items); err == nil {
			return ids, nil
		}
		return items, nil
	}
	return nil, &ShapeMismatchError{Key: key, Expected: string(k), Received: "unknown kind"}
}

func (k Kind) decodeScalar(key, v string) (any, error) {
	switch k {
	case KindString:
		return v, nil
	case KindInt:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, &ShapeMismatchError{Key: key, Expected: string(k), Received: "string", Value: v}
		}
		return i, nil
	case KindUUID:
		id, ok := parseUUID(v)
		if !ok {
			return nil, &ShapeMismatchError{Key: key, Expected: string(k), Received: "string", Value: v}
		}
		return id, nil
	}
	return nil, &ShapeMismatchError{Key: key, Expected: string(k), Received: "unknown kind"}
}

func splitItems(raw []string) []string {
	items := make([]string, 0, len(raw))
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, part)
			}
		}
	}
	return items
}

func decodeInts(key string, k Kind, items []string) ([]int, error) {
	out := make([]int, 0, len(items))
	for _, item := range items {
		i, err := strconv.Atoi(item)
		if err != nil {
			return nil, &ShapeMismatchError{Key: key, Expected: string(k), Received: "string", Value: item}
		}
		out = append(out, i)
	}
	return out, nil
}

func decodeUUIDs(key string, k Kind, items []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		id, ok := parseUUID(item)
		if !ok {
			return nil, &ShapeMismatchError{Key: key, Expected: string(k), Received: "string", Value: item}
		}
		out = append(out, id)
	}
	return out, nil
}

// parseUUID só aceita a forma canônica (36 chars), para que o valor devolvido
// seja igual ao enviado.
func parseUUID(s string) (uuid.UUID, bool) {
	if len(s) != 36 {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// CloneValue copia valores em lista; escalares são imutáveis e voltam como estão.
func CloneValue(v any) any {
	switch t := v.(type) {
	case []string:
		return append(make([]string, 0, len(t)), t...)
	case []int:
		return append(make([]int, 0, len(t)), t...)
	case []uuid.UUID:
		return append(make([]uuid.UUID, 0, len(t)), t...)
	}
	return v
}
