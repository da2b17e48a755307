package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-post-board/internal/app"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user registered")
	writeMessage(w, r, app.MsgUserCreated)
}

// login accepts either a JSON body {"email", "password"} or an OAuth2
// password grant form where the email is sent as "username".
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, err := decodeLoginRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid login request")
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, token, http.StatusOK)
}

func decodeLoginRequest(r *http.Request) (models.LoginRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(1 << 20); err != nil && err != http.ErrNotMultipart {
			return models.LoginRequest{}, err
		}
		return models.LoginRequest{
			Email:    r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}, nil
	default:
		var req models.LoginRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		return req, err
	}
}
