// Package handler builds the transport handlers enabled by the server
// configuration.
package handler

import (
	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/handler/grpc"
	"github.com/MKhiriev/go-post-board/internal/handler/http"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates one handler per configured address. Every request
// runs on a connection acquired from db; db may be nil in tests.
func NewHandlers(services *service.Services, db *store.DB, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		opts := []http.Option{http.WithRequestTimeout(cfg.RequestTimeout)}
		if db != nil {
			opts = append(opts, http.WithConnAcquirer(db))
		}
		handlers.HTTP = http.NewHandler(services, logger, opts...)
	}
	if cfg.GRPCAddress != "" {
		var conns grpc.ConnAcquirer
		if db != nil {
			conns = db
		}
		handlers.GRPC = grpc.NewHandler(services, conns, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
