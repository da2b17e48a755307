// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-post-board/models"
	"github.com/go-chi/chi/v5"
)

// methodNotAllowed returns the router's MethodNotAllowed handler. It answers
// 405 {"detail": "Method Not Allowed"} and lists the methods registered for
// the matched pattern in the Allow header.
func methodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			for method := range route.Handlers {
				allowed = append(allowed, method)
			}
		}
		slices.Sort(allowed)

		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		writeJSON(w, r, models.ErrorResponse{Detail: http.StatusText(http.StatusMethodNotAllowed)}, http.StatusMethodNotAllowed)
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.ErrorResponse{Detail: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
}
