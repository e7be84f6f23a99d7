package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/ping", h.ping)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Route("/api/tenants/{tenant}", func(r chi.Router) {
		r.Use(h.auth, h.tenantScope)

		r.Post("/batch", h.applyBatch)

		r.Get("/{kind}", h.listDocuments)

		r.Get("/{kind}/{id}", h.getDocument)
		r.Put("/{kind}/{id}", h.setDocument)
		r.Patch("/{kind}/{id}", h.updateDocument)
		r.Delete("/{kind}/{id}", h.deleteDocument)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
