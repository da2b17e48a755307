package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-post-board/internal/app"
	"github.com/MKhiriev/go-post-board/internal/service"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first matching target wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusUnprocessableEntity, app.MsgInvalidDataProvided}},
	{service.ErrUserNotFound, errorResponse{http.StatusNotFound, app.MsgUserNotFound}},
	{service.ErrIncorrectPassword, errorResponse{http.StatusUnauthorized, app.MsgIncorrectPassword}},
	{service.ErrInvalidToken, errorResponse{http.StatusUnauthorized, app.MsgInvalidToken}},
	{ErrEmptyAuthorizationHeader, errorResponse{http.StatusUnauthorized, app.MsgInvalidToken}},
	{ErrNoPrincipal, errorResponse{http.StatusUnauthorized, app.MsgInvalidToken}},
	{service.ErrEmailAlreadyExists, errorResponse{http.StatusConflict, app.MsgUserAlreadyExists}},
}

func responseFromError(err error) errorResponse {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return errorResponse{http.StatusRequestEntityTooLarge, app.MsgRequestBodyTooLarge}
	}

	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}
