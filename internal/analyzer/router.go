package analyzer

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Bahjat/seo-tag-analyzer/backend/internal/platform/middleware"
)

// NewRouter wires the transport behind the platform middleware stack.
func NewRouter(t *Transport, logger *slog.Logger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(allowedOrigins))
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(chimw.Recoverer)

	t.RegisterRoutes(r)
	return r
}
