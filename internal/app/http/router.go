package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"buildquote/backend/internal/app/config"
	"buildquote/backend/internal/app/http/handlers"
	"buildquote/backend/internal/app/http/middleware"
)

func NewRouter(cfg config.Config, h *handlers.Handlers, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logging(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.RateLimit(cfg.AnalyzeRateLimit, cfg.AnalyzeRateBurst)).
			Post("/analyze-image", h.AnalyzeImage)

		r.Post("/quote", h.CreateQuote)
		r.Post("/quote/pdf", h.QuotePDF)
		r.Post("/gutter-quote", h.GutterQuote)
		r.Post("/gutter-quote/pdf", h.GutterQuotePDF)
	})

	return r
}
