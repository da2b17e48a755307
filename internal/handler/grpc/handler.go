// Package grpc implements the gRPC transport of the post board.
//
// Messages are the JSON-encoded models types carried by a registered "json"
// codec, so no generated protobuf code is needed. Clients select the codec
// with grpc.CallContentSubtype(CodecName).
package grpc

import (
	"context"

	"github.com/MKhiriev/go-post-board/internal/app"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/models"
	"google.golang.org/grpc"
)

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	services *service.Services

	conns ConnAcquirer

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. conns may be nil, in which case
// repositories use the pool directly.
func NewHandler(services *service.Services, conns ConnAcquirer, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		conns:    conns,
		logger:   logger,
	}
}

// Register attaches the post board service and its interceptors to srv.
func (h *Handler) Register(srv *grpc.Server) {
	srv.RegisterService(&ServiceDesc, h)
}

// ServerOptions returns the interceptor chain every server hosting h must use.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withLogging, h.withConn, h.withAuth),
	}
}

func (h *Handler) RegisterUser(ctx context.Context, req *models.RegisterRequest) (*models.MessageResponse, error) {
	if _, err := h.services.AuthService.RegisterUser(ctx, *req); err != nil {
		return nil, statusFromError(ctx, err)
	}
	return &models.MessageResponse{Message: app.MsgUserCreated}, nil
}

func (h *Handler) Login(ctx context.Context, req *models.LoginRequest) (*models.Token, error) {
	token, err := h.services.AuthService.Login(ctx, *req)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}
	return &token, nil
}

func (h *Handler) CreatePost(ctx context.Context, req *models.CreatePostRequest) (*models.MessageResponse, error) {
	principal, ok := utils.PrincipalFromContext(ctx)
	if !ok {
		return nil, statusFromError(ctx, service.ErrInvalidToken)
	}

	if _, err := h.services.PostService.CreatePost(ctx, principal, *req); err != nil {
		return nil, statusFromError(ctx, err)
	}
	return &models.MessageResponse{Message: app.MsgPostCreated}, nil
}

func (h *Handler) ListPosts(ctx context.Context, _ *ListPostsRequest) (*models.PostsResponse, error) {
	principal, ok := utils.PrincipalFromContext(ctx)
	if !ok {
		return nil, statusFromError(ctx, service.ErrInvalidToken)
	}

	posts, err := h.services.PostService.ListPosts(ctx, principal)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return &models.PostsResponse{Posts: posts, Length: len(posts)}, nil
}
