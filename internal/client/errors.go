package client

import "errors"

var (
	ErrNilAdapter     = errors.New("server adapter is nil")
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingToken   = errors.New("bearer token is required: run login and pass -token or set ADAPTER_TOKEN")
)
