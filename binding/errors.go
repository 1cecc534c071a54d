package binding

import (
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"query-binding/binding/domain"
)

const sourceQuery = "query"

type ErrorDetail struct {
	Key     string `json:"key"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

// ErrorResponse é o corpo devolvido em qualquer falha de resolução.
type ErrorResponse struct {
	StatusCode int           `json:"status_code"`
	Detail     string        `json:"detail"`
	Extra      []ErrorDetail `json:"extra,omitempty"`
}

// translateError converte erros de validação em 400 (um item em Extra por
// chave); qualquer outro erro vira 500 sem detalhes internos.
func translateError(r *http.Request, err error) (int, ErrorResponse) {
	var extra []ErrorDetail
	seen := make(map[ErrorDetail]struct{})
	for _, e := range multierr.Errors(err) {
		detail, ok := validationDetail(e)
		if !ok {
			return http.StatusInternalServerError, ErrorResponse{
				StatusCode: http.StatusInternalServerError,
				Detail:     http.StatusText(http.StatusInternalServerError),
			}
		}
		if _, dup := seen[detail]; dup {
			continue
		}
		seen[detail] = struct{}{}
		extra = append(extra, detail)
	}
	return http.StatusBadRequest, ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Detail:     "Validation failed for " + r.Method + " " + r.URL.Path,
		Extra:      extra,
	}
}

func validationDetail(err error) (ErrorDetail, bool) {
	var missing *domain.MissingRequiredParameterError
	if errors.As(err, &missing) {
		return ErrorDetail{Key: missing.Key, Message: err.Error(), Source: sourceQuery}, true
	}
	var shape *domain.ShapeMismatchError
	if errors.As(err, &shape) {
		return ErrorDetail{Key: shape.Key, Message: err.Error(), Source: sourceQuery}, true
	}
	var parse *domain.QueryParseError
	if errors.As(err, &parse) {
		return ErrorDetail{Message: err.Error(), Source: sourceQuery}, true
	}
	return ErrorDetail{}, false
}
