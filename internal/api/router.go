package api

import (
	"time"

	"github.com/cheetahbyte/clavekey/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func Register(r *chi.Mux, h *handlers.Handlers, timeout time.Duration) {
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Route("/v1", func(v1Router chi.Router) {
			v1Router.Get("/healthz", h.Healthz)
			v1Router.Post("/keys", h.CreateLicense)
			v1Router.Post("/keys/validate", h.ValidateLicense)
		})
	})
}
