package http

import (
	"net/http"

	"go.uber.org/zap"

	"rent-quote/service"
)

type RouterDeps struct {
	Quotes      *service.QuoteService
	Comparisons *service.ComparisonService
	Limiter     Limiter
	Metrics     *Metrics
	Logger      *zap.Logger
}

// NewRouter wires the quote routes behind the rate limiter, plus health
// and metrics endpoints.
func NewRouter(deps RouterDeps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := deps.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}

	quoteHandler := NewQuoteHandler(deps.Quotes, metrics, logger)
	compareHandler := NewCompareHandler(deps.Comparisons, logger)

	limited := func(h http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(deps.Limiter, metrics, logger, h)
	}

	mux := http.NewServeMux()
	mux.Handle("POST /quote", limited(quoteHandler.CalculateQuote))
	mux.Handle("POST /quote/export", limited(quoteHandler.ExportQuote))
	mux.Handle("POST /quote/compare", limited(compareHandler.CompareQuotes))
	mux.Handle("GET /quote/{id}", limited(quoteHandler.GetQuote))
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})

	return metrics.Middleware(mux)
}
