package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const traceIDMetadataKey = "x-trace-id"

// ConnAcquirer checks out a dedicated store connection for one call.
type ConnAcquirer interface {
	Acquire(ctx context.Context) (*store.Conn, error)
}

// authenticatedMethods require a bearer token in "authorization" metadata.
var authenticatedMethods = map[string]bool{
	CreatePostMethod: true,
	ListPostsMethod:  true,
}

// withLogging attaches a trace-scoped logger to the call context and logs
// the outcome of every call.
func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := firstMetadataValue(ctx, traceIDMetadataKey)
	if traceID == "" {
		traceID = utils.NewTraceID()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(ctx)
	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDMetadataKey, traceID))

	start := time.Now()
	resp, err := handler(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

// withConn runs the call on one acquired store connection and releases it
// when the handler returns.
func (h *Handler) withConn(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if h.conns == nil {
		return handler(ctx, req)
	}

	conn, err := h.conns.Acquire(ctx)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}
	defer conn.Release()

	return handler(store.WithConn(ctx, conn), req)
}

func (h *Handler) withAuth(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !authenticatedMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	token, err := utils.ParseBearerToken(firstMetadataValue(ctx, "authorization"))
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("bad authorization metadata")
		return nil, statusFromError(ctx, service.ErrInvalidToken)
	}

	principal, err := h.services.AuthService.Resolve(ctx, token)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}

	return handler(utils.WithPrincipal(ctx, principal), req)
}

func firstMetadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
