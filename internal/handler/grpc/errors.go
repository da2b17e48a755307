package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-post-board/internal/app"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/internal/validators"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodes = []struct {
	target  error
	code    codes.Code
	message string
}{
	{service.ErrInvalidDataProvided, codes.InvalidArgument, app.MsgInvalidDataProvided},
	{service.ErrUserNotFound, codes.NotFound, app.MsgUserNotFound},
	{service.ErrIncorrectPassword, codes.Unauthenticated, app.MsgIncorrectPassword},
	{service.ErrInvalidToken, codes.Unauthenticated, app.MsgInvalidToken},
	{service.ErrEmailAlreadyExists, codes.AlreadyExists, app.MsgUserAlreadyExists},
}

// statusFromError converts a service error to a gRPC status carrying the
// same fixed message the REST transport uses.
func statusFromError(ctx context.Context, err error) error {
	for _, e := range errorCodes {
		if !errors.Is(err, e.target) {
			continue
		}
		message := e.message
		if errors.Is(err, validators.ErrValidationFailed) {
			message = err.Error()
		}
		logger.FromContext(ctx).Debug().Err(err).Str("code", e.code.String()).Msg("request rejected")
		return status.Error(e.code, message)
	}

	logger.FromContext(ctx).Err(err).Msg("request failed")
	return status.Error(codes.Internal, app.MsgInternalServerError)
}
