package http

import (
	"net/http"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/store"
)

// withConn acquires one store connection per request and releases it when
// the handler returns, including on panics unwound by the recoverer.
func (h *Handler) withConn(next http.Handler) http.Handler {
	if h.conns == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.conns.Acquire(r.Context())
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("error acquiring store connection")
			writeError(w, r, err)
			return
		}
		defer conn.Release()

		next.ServeHTTP(w, r.WithContext(store.WithConn(r.Context(), conn)))
	})
}
