package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/internal/store"
)

// ConnAcquirer checks out a dedicated store connection for one request.
// *store.DB implements it.
type ConnAcquirer interface {
	Acquire(ctx context.Context) (*store.Conn, error)
}

type Handler struct {
	services *service.Services

	conns          ConnAcquirer
	requestTimeout time.Duration

	logger *logger.Logger
}

// Option customises a Handler built by [NewHandler].
type Option func(*Handler)

// WithConnAcquirer makes every request run its statements on a connection
// acquired from conns and released when the request ends.
func WithConnAcquirer(conns ConnAcquirer) Option {
	return func(h *Handler) {
		h.conns = conns
	}
}

// WithRequestTimeout cancels request contexts after d. Zero disables it.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = d
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
