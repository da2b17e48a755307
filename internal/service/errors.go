package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrUserNotFound        = errors.New("user not found")
	ErrIncorrectPassword   = errors.New("incorrect password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrEmailAlreadyExists  = errors.New("user with this email already exists")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrUnknownTokenMode      = errors.New("unknown token mode")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
