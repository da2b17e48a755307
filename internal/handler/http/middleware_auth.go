package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/internal/utils"
)

// auth resolves the bearer token of the request to a principal and stores it
// in the request context under [utils.PrincipalCtxKey].
//
// A missing or malformed header and a token that does not identify an
// existing user are rejected with 401 "Invalid token". Store failures during
// resolution are 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidToken, err))
			return
		}

		ctx := r.Context()
		principal, err := h.services.AuthService.Resolve(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log.Debug().Int64("user_id", principal.UserID).Msg("request authenticated")
		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, principal)))
	})
}
