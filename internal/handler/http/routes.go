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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/posts", h.getAllPosts)
		r.Get("/health", h.health)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/posts", h.createPost)
		r.Put("/posts/{postID}", h.updatePost)
		r.Delete("/posts/{postID}", h.deletePost)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
