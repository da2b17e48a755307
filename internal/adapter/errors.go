package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInvalidData         = errors.New("invalid data")
	ErrInternalServerError = errors.New("internal server error")
	ErrEmptyAddress        = errors.New("empty address")
)
