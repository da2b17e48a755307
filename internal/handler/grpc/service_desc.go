package grpc

import (
	"context"

	"github.com/MKhiriev/go-post-board/models"
	"google.golang.org/grpc"
)

const serviceName = "postboard.v1.PostBoard"

// Full method names.
const (
	RegisterMethod   = "/" + serviceName + "/Register"
	LoginMethod      = "/" + serviceName + "/Login"
	CreatePostMethod = "/" + serviceName + "/CreatePost"
	ListPostsMethod  = "/" + serviceName + "/ListPosts"
)

// ListPostsRequest is empty: the posts listed are the caller's.
type ListPostsRequest struct{}

// PostBoardServer is the server API of the post board service.
type PostBoardServer interface {
	RegisterUser(context.Context, *models.RegisterRequest) (*models.MessageResponse, error)
	Login(context.Context, *models.LoginRequest) (*models.Token, error)
	CreatePost(context.Context, *models.CreatePostRequest) (*models.MessageResponse, error)
	ListPosts(context.Context, *ListPostsRequest) (*models.PostsResponse, error)
}

// ServiceDesc describes postboard.v1.PostBoard for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*PostBoardServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unaryHandler(RegisterMethod, PostBoardServer.RegisterUser)},
		{MethodName: "Login", Handler: unaryHandler(LoginMethod, PostBoardServer.Login)},
		{MethodName: "CreatePost", Handler: unaryHandler(CreatePostMethod, PostBoardServer.CreatePost)},
		{MethodName: "ListPosts", Handler: unaryHandler(ListPostsMethod, PostBoardServer.ListPosts)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "postboard/v1/postboard.proto",
}

// unaryHandler adapts a typed server method to grpc's untyped method handler,
// running it through the server's unary interceptor chain.
func unaryHandler[Req, Resp any](fullMethod string, call func(PostBoardServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		server := srv.(PostBoardServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}

		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
