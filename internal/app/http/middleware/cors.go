package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows cross-origin calls from origin. Preflight requests are
// answered directly with 204.
func CORS(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "*"
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:       []string{origin},
		AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:       []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposedHeaders:       []string{"X-Estimate-Source", "X-Quote-Id", "Content-Disposition"},
		MaxAge:               86400,
		OptionsSuccessStatus: http.StatusNoContent,
	})
}
