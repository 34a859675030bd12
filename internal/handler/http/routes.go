package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "text/html", "application/json"))

	router.Get("/", h.index)
	router.Get("/api/version", h.getAppVersion)

	router.Route("/api/qr", func(r chi.Router) {
		r.Post("/generate", h.generateQR)
		r.Get("/current.png", h.currentQR)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
