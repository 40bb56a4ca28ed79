package http

import (
	"bytes"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"rent-quote/domain"
	"rent-quote/export"
	"rent-quote/service"
)

type QuoteHandler struct {
	service *service.QuoteService
	metrics *Metrics
	logger  *zap.Logger
}

func NewQuoteHandler(service *service.QuoteService, metrics *Metrics, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{service: service, metrics: metrics, logger: logger}
}

// CalculateQuote handles POST /quote.
func (h *QuoteHandler) CalculateQuote(w http.ResponseWriter, r *http.Request) {
	result, ok := h.quote(w, r)
	if !ok {
		return
	}
	writeJSON(w, result, h.logger)
}

// GetQuote handles GET /quote/{id} for quotes issued by this process.
func (h *QuoteHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	result, ok := h.service.FindQuote(r.PathValue("id"))
	if !ok {
		http.Error(w, "orçamento não encontrado", http.StatusNotFound)
		return
	}
	writeJSON(w, result, h.logger)
}

// ExportQuote handles POST /quote/export?format=csv|xlsx|pdf.
func (h *QuoteHandler) ExportQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, ok := h.quote(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, result); err != nil {
		h.logger.Error("error exporting quote",
			zap.String("quote_id", result.ID),
			zap.String("format", string(format)),
			zap.Error(err),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	filename := export.EnsureExtension("orcamento-"+result.ID, format)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("error writing export", zap.Error(err))
	}
}

func (h *QuoteHandler) quote(w http.ResponseWriter, r *http.Request) (domain.QuoteResult, bool) {
	var input domain.PropertyInput
	if !decodeJSON(w, r, &input, h.logger) {
		return domain.QuoteResult{}, false
	}

	property, err := input.ToProperty()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return domain.QuoteResult{}, false
	}

	result, err := h.service.CalculateQuote(r.Context(), property)
	if err != nil {
		h.logger.Info("quote rejected", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return domain.QuoteResult{}, false
	}

	h.metrics.QuoteIssued(result.Type)
	return result, true
}
