package http

import (
	"net/http"

	"go.uber.org/zap"

	"rent-quote/domain"
	"rent-quote/service"
)

type CompareHandler struct {
	service *service.ComparisonService
	logger  *zap.Logger
}

func NewCompareHandler(service *service.ComparisonService, logger *zap.Logger) *CompareHandler {
	return &CompareHandler{service: service, logger: logger}
}

// CompareQuotes handles POST /quote/compare.
func (h *CompareHandler) CompareQuotes(w http.ResponseWriter, r *http.Request) {
	var input domain.CompareInput
	if !decodeJSON(w, r, &input, h.logger) {
		return
	}

	result, err := h.service.CompareQuotes(r.Context(), input)
	if err != nil {
		h.logger.Info("comparison rejected", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, result, h.logger)
}
