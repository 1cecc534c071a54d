package domain

import "fmt"

// MissingRequiredParameterError: parâmetro obrigatório ausente e sem default.
type MissingRequiredParameterError struct {
	Key string
}

func (e *MissingRequiredParameterError) Error() string {
	return fmt.Sprintf("missing required query parameter %q", e.Key)
}

// ShapeMismatchError: o valor recebido não tem o formato declarado.
// Nunca é convertido silenciosamente.
type ShapeMismatchError struct {
	Key      string
	Expected string
	Received string
	Value    string
}

func (e *ShapeMismatchError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("query parameter %q: expected %s, got %s (%q)", e.Key, e.Expected, e.Received, e.Value)
	}
	return fmt.Sprintf("query parameter %q: expected %s, got %s", e.Key, e.Expected, e.Received)
}

type QueryParseError struct {
	Raw string
	Err error
}

func (e *QueryParseError) Error() string {
	return fmt.Sprintf("malformed query string: %v", e.Err)
}

func (e *QueryParseError) Unwrap() error { return e.Err }

type DuplicateProviderError struct {
	ID string
}

func (e *DuplicateProviderError) Error() string {
	return fmt.Sprintf("provider %q already registered", e.ID)
}

type UnknownProviderError struct {
	ID string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown provider %q", e.ID)
}

type InvalidDeclarationError struct {
	Provider string
	Reason   string
}

func (e *InvalidDeclarationError) Error() string {
	if e.Provider == "" {
		return "invalid declaration: " + e.Reason
	}
	return fmt.Sprintf("invalid declaration for provider %q: %s", e.Provider, e.Reason)
}
