package binding

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"query-binding/binding/application"
	"query-binding/binding/domain"
)

type HandlerOptions struct {
	Endpoint domain.Endpoint
	Composer application.Composer
	Stats    domain.StatsStore
	Logger   *zap.Logger
}

type handler struct {
	endpoint domain.Endpoint
	composer application.Composer
	stats    domain.StatsStore
	logger   *zap.Logger
}

// Handler cria o endpoint somente leitura que devolve a composição do endpoint.
func Handler(opts HandlerOptions) http.Handler {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &handler{
		endpoint: opts.Endpoint,
		composer: opts.Composer,
		stats:    opts.Stats,
		logger:   opts.Logger,
	}
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := http.StatusOK
	outcome := domain.OutcomeResolved

	body, err := h.resolve(r)
	if err != nil {
		var resp ErrorResponse
		status, resp = translateError(r, err)
		outcome = domain.OutcomeInvalid
		if status >= http.StatusInternalServerError {
			outcome = domain.OutcomeFailed
			h.logger.Error("resolution failed", zap.String("endpoint", h.endpoint.Path), zap.Error(err))
		}
		writeJSON(w, status, resp)
	} else {
		writeBody(w, status, body)
	}

	if h.stats != nil {
		if err := h.stats.Record(r.Context(), domain.ResolutionEvent{
			Endpoint: h.endpoint.Path,
			Status:   status,
			Outcome:  outcome,
			At:       start,
		}); err != nil {
			h.logger.Warn("stats record failed", zap.Error(err))
		}
	}

	h.logger.Debug("query resolved",
		zap.String("endpoint", h.endpoint.Path),
		zap.Strings("providers", h.endpoint.Providers),
		zap.Int("status", status),
		zap.Duration("elapsed", time.Since(start)))
}

func (h *handler) resolve(r *http.Request) ([]byte, error) {
	q, err := domain.ParseQuery(r.URL.RawQuery)
	if err != nil {
		return nil, err
	}
	records, err := h.composer.ComposeEndpoint(h.endpoint, q)
	if err != nil {
		return nil, err
	}
	return Render(h.endpoint, records)
}

// Render gera o JSON da resposta: o próprio registro em endpoints single,
// senão a lista na ordem dos providers.
func Render(ep domain.Endpoint, records []domain.Record) ([]byte, error) {
	if ep.Single && len(records) == 1 {
		return json.Marshal(records[0])
	}
	if records == nil {
		records = []domain.Record{}
	}
	return json.Marshal(records)
}

// writeBody é o único ponto de escrita: sucesso e erro têm o mesmo enquadramento
// (JSON compacto, sem newline final).
func writeBody(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"status_code":500,"detail":"Internal Server Error"}`)
	}
	writeBody(w, status, body)
}

// writeStatus responde só com status e texto padrão, no formato de ErrorResponse.
func writeStatus(w http.ResponseWriter, status int) {
	writeJSON(w, status, ErrorResponse{StatusCode: status, Detail: http.StatusText(status)})
}
