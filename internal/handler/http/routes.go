package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/account/new", h.createAccount)
		r.Post("/api/account/login", h.login)
		r.Get("/api/threads", h.listThreads)
		r.Get("/api/thread/{id}", h.getThread)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/logout", h.logout)
		r.Post("/api/thread/new", h.createThread)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
