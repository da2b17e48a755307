package http

import (
	"github.com/MKhiriev/go-post-board/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxRequestBodyBytes caps request bodies on the wire and again after gzip
// decoding. The largest valid payload is a post of a few hundred bytes.
const maxRequestBodyBytes = 64 << 10

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, withMetrics, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed(router))

	router.Get("/metrics", metrics.Handler().ServeHTTP)

	router.Group(func(r chi.Router) {
		r.Use(
			middleware.RequestSize(maxRequestBodyBytes),
			withGZipRequest,
			middleware.RequestSize(maxRequestBodyBytes),
			middleware.Compress(5, "application/json", "text/plain"),
			h.withConn,
		)

		r.Get("/api/version", h.getServerVersion)

		// routes without authorization
		r.Post("/token", h.login)
		r.Post("/create_user", h.register)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/create_post", h.createPost)
			r.Get("/posts", h.listPosts)
		})
	})

	return router
}
