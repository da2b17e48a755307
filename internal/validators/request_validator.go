package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-post-board/models"
)

// Struct field names accepted by Validate to restrict validation to a subset
// of a request.
const (
	FieldName        = "Name"
	FieldEmail       = "Email"
	FieldPassword    = "Password"
	FieldTitle       = "Title"
	FieldDescription = "Description"
)

// RequestValidator validates inbound request models against their
// `validate` struct tags. Error messages name fields by their JSON key.
type RequestValidator struct {
	v *validator.Validate
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &RequestValidator{v: v}
}

// Validate checks obj, which must be one of the request models (value or
// pointer). When fields are given only those struct fields are checked.
//
// A failed check returns an error wrapping ErrValidationFailed whose text
// lists every violated rule.
func (rv *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.RegisterRequest, *models.RegisterRequest,
		models.LoginRequest, *models.LoginRequest,
		models.CreatePostRequest, *models.CreatePostRequest:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		err = rv.v.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = rv.v.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return fmt.Errorf("%w: %s", ErrValidationFailed, strings.Join(msgs, "; "))
	}

	return fmt.Errorf("%w: %w", ErrValidationFailed, err)
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return strings.ToLower(fld.Name)
	}
	return name
}
