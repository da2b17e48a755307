package server

import (
	"net"

	"github.com/MKhiriev/go-post-board/internal/config"
	myGRPC "github.com/MKhiriev/go-post-board/internal/handler/grpc"
	"github.com/MKhiriev/go-post-board/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(server)

	return &grpcServer{
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Err(err).Str("address", g.address).Msg("gRPC server Listen")
		return
	}

	g.logger.Info().Str("address", g.address).Msg("gRPC server listening")
	if err := g.server.Serve(listener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.server.GracefulStop()
}
