package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/internal/validators"
	"github.com/MKhiriev/go-post-board/models"
)

// writeError maps err to a status and a fixed message and writes it as
// {"detail": message}. Validation failures keep their field messages.
// Unauthorized responses carry a Bearer challenge.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)
	log := logger.FromRequest(r)

	detail := resp.message
	if errors.Is(err, validators.ErrValidationFailed) {
		detail = err.Error()
	}

	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	if resp.status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	writeJSON(w, r, models.ErrorResponse{Detail: detail}, resp.status)
}

func writeMessage(w http.ResponseWriter, r *http.Request, message string) {
	writeJSON(w, r, models.MessageResponse{Message: message}, http.StatusOK)
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
